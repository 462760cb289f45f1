package schedule

// DefaultDurationDays is used for unrecognized duration codes.
const DefaultDurationDays = 7

// DurationDays maps a duration code to the number of days to materialize.
// Unknown codes fall back to one week instead of failing; that is the
// documented policy of the create endpoint.
func DurationDays(code string) int {
	switch code {
	case "1w":
		return 7
	case "2w":
		return 14
	case "3w":
		return 21
	case "1m":
		return 30
	case "2m":
		return 60
	default:
		return DefaultDurationDays
	}
}
