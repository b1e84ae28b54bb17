package messages

// Self-test suite messages.
const (
	SelftestStatusPassLabel = "[PASS]"
	SelftestStatusFailLabel = "[FAIL]"

	SelftestResultLineFmt = "%s %s\n"
	SelftestDetailFmt     = "       step %d (%s): expected %s, got %s\n"
	SelftestDetailTailFmt = "       %s\n"

	SelftestSummaryPassFmt = "All %d self-test case(s) passed."
	SelftestSummaryFailFmt = "%d of %d self-test case(s) failed."
	SelftestFailureError   = "self-test suite failed"

	SelftestPreconditionHeader = "Preparing system state (init)..."
)
