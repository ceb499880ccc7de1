package esr

// describeCv is shared by all syndrome layouts of trapped AArch32
// instructions that carry a condition code.
func describeCv(cv bool) string {
	if cv {
		return "COND is valid"
	}
	return "COND is not valid"
}
