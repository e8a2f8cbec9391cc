package errors

// Exit codes. Every failure kind exits with ExitGeneralError.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates the run failed.
	ExitGeneralError = 1
)

// ExitCodeFromError determines the exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}
	return ExitGeneralError
}
