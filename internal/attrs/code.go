package attrs

// IsValidCode reports whether s is acceptable as a stored code: non-empty
// and limited to letters, digits, hyphen and underscore. Manual tagging
// rejects anything else before writing.
func IsValidCode(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '_':
		default:
			return false
		}
	}
	return true
}
