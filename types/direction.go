package types

import "fmt"

// PortDirection describes which way data flows through a port
type PortDirection int

// Port direction constants
const (
	PortDirectionInput PortDirection = iota
	PortDirectionOutput
	PortDirectionInOut
)

var portDirectionNames = []string{"INPUT", "OUTPUT", "INOUT"}

// String implements fmt.Stringer for PortDirection
func (pd PortDirection) String() string {
	if pd < 0 || int(pd) >= len(portDirectionNames) {
		return fmt.Sprintf("PortDirection(%d)", int(pd))
	}
	return portDirectionNames[pd]
}

// IsValid reports whether pd is one of the declared directions
func (pd PortDirection) IsValid() bool {
	return pd >= PortDirectionInput && pd <= PortDirectionInOut
}

// Readable reports whether a node may read the port (INPUT or INOUT)
func (pd PortDirection) Readable() bool {
	return pd == PortDirectionInput || pd == PortDirectionInOut
}

// Writable reports whether a node may write the port (OUTPUT or INOUT)
func (pd PortDirection) Writable() bool {
	return pd == PortDirectionOutput || pd == PortDirectionInOut
}

// ParsePortDirection matches text against the declared names, case-sensitively.
func ParsePortDirection(text string) (PortDirection, error) {
	i, err := lookupName(portDirectionNames, text, "PortDirection")
	return PortDirection(i), err
}

// MarshalText implements encoding.TextMarshaler
func (pd PortDirection) MarshalText() ([]byte, error) {
	return []byte(pd.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (pd *PortDirection) UnmarshalText(text []byte) error {
	parsed, err := ParsePortDirection(string(text))
	if err != nil {
		return err
	}
	*pd = parsed
	return nil
}
