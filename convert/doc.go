// Package convert parses configuration text into typed values and renders
// typed values back to text.
//
// A Registry maps a type identity (reflect.Type) to a Converter and a
// Renderer. The default registry knows string, bool, every integer and float
// size, []int and []float64 (";" separated) and the node enums from package
// types:
//
//	speed, err := convert.FromString[int]("55")
//	text, err := convert.ToStr([]float64{1.5, 2}) // "1.5;2"
//
// Programs add their own types during start-up and then freeze the registry:
//
//	reg := convert.Default()
//	_ = convert.Register(reg, parsePose)
//	_ = convert.RegisterRenderer(reg, formatPose)
//	reg.Freeze()
//
// Asking for a type nobody registered is a defect in the program, not bad
// input, so it fails with errors.ErrMissingSpecialization in the fatal class.
// Text that does not match a registered grammar fails with errors.ErrConversion
// in the invalid class.
package convert
