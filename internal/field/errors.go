package field

import "fmt"

// InvalidRes0Error reports reserved bits that did not read as zero.
type InvalidRes0Error struct {
	Res0 uint64
}

func (e InvalidRes0Error) Error() string {
	return fmt.Sprintf("Invalid ESR, res0 is %#x", e.Res0)
}

// InvalidEcError reports an exception class with no architected meaning.
type InvalidEcError struct {
	EC uint64
}

func (e InvalidEcError) Error() string {
	return fmt.Sprintf("Invalid EC %#x", e.EC)
}

// InvalidFscError reports a fault status code with no architected meaning.
type InvalidFscError struct {
	FSC uint64
}

func (e InvalidFscError) Error() string {
	return fmt.Sprintf("Invalid DFSC or IFSC %#x", e.FSC)
}

// InvalidSetError reports a synchronous error type with no architected meaning.
type InvalidSetError struct {
	SET uint64
}

func (e InvalidSetError) Error() string {
	return fmt.Sprintf("Invalid SET %#x", e.SET)
}

// InvalidAetError reports an asynchronous error type with no architected meaning.
type InvalidAetError struct {
	AET uint64
}

func (e InvalidAetError) Error() string {
	return fmt.Sprintf("Invalid AET %#x", e.AET)
}

// InvalidAmError reports an addressing mode with no architected meaning.
type InvalidAmError struct {
	AM uint64
}

func (e InvalidAmError) Error() string {
	return fmt.Sprintf("Invalid AM %#x", e.AM)
}

// InvalidLd64bIssError reports an LD64B or ST64B syndrome outside the
// architected value range.
type InvalidLd64bIssError struct {
	ISS uint64
}

func (e InvalidLd64bIssError) Error() string {
	return fmt.Sprintf("Invalid ISS %#x for trapped LD64B or ST64B*", e.ISS)
}
