package utils

// MaskName hides a display name for logs and analytics attached to financial
// actions: the first three runes are kept, the rest become asterisks.
func MaskName(name string) string {
	runes := []rune(name)
	if len(runes) <= 3 {
		return string(runes)
	}
	masked := make([]rune, len(runes))
	copy(masked, runes[:3])
	for i := 3; i < len(runes); i++ {
		masked[i] = '*'
	}
	return string(masked)
}
