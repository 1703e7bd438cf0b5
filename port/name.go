package port

// Reserved attribute names that can never be ports.
const (
	ReservedName = "name"
	ReservedID   = "ID"
)

// IsAllowedPortName reports whether name can be used as a port name.
// The name must be non-empty, start with an ASCII letter and not be reserved.
func IsAllowedPortName(name string) bool {
	if name == "" || IsReservedName(name) {
		return false
	}
	c := name[0]
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// IsReservedName reports whether name is a reserved attribute.
func IsReservedName(name string) bool {
	return name == ReservedName || name == ReservedID
}
