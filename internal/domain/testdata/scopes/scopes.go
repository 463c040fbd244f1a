package scopes

const (
	MaxRetries    = 3
	EnableLogging = true
)

var (
	counter   = 0
	isEnabled = false
)

func init() {
	counter = 10
	if isEnabled {
		println("initialized")
	}
}

func Calculate(a, b int) int {
	if a > b {
		return a + b
	}
	return a - b
}

//mutor:ignore
func Validate(value int) bool {
	return value > 0 && value <= MaxRetries
}
