package queue

// Job kinds carried on the queue. The worker consumes all of them.
const (
	MembershipCreationMail     = "MembershipCreationMail"
	MembershipUpdateMail       = "MembershipUpdateMail"
	MembershipCancellationMail = "MembershipCancellationMail"
	HelpOrderAnswerMail        = "HelpOrderAnswerMail"
)

// Kinds lists every job kind, in consumption order.
func Kinds() []string {
	return []string{
		MembershipCreationMail,
		MembershipUpdateMail,
		MembershipCancellationMail,
		HelpOrderAnswerMail,
	}
}
