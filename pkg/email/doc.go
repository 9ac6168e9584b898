// Package email delivers offer proofs by email.
//
// EmailSender is the single abstraction. Two implementations are provided:
//   - NewPostmarkClient sends through Postmark with open and link tracking;
//   - NewDevSender writes each message to a local directory as .html, .txt
//     and .json files, for previewing proofs without a mail provider.
//
// Both validate SendEmailParams before doing anything else:
//
//	sender := email.NewDevSender("./proofs")
//	err := sender.SendEmail(ctx, email.SendEmailParams{
//	    SendTo:   "marketing@example.com",
//	    Subject:  "Proof: 2025 Toyota Camry",
//	    BodyHTML: html,
//	    BodyText: text,
//	    Tag:      "offer-proof",
//	})
//	if errors.Is(err, email.ErrInvalidParams) {
//	    // bad recipient, subject or body
//	}
package email
