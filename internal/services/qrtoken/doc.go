/*
Package qrtoken manages the payee side of QR payments: minting a token that
says "pay me amount X", rendering its remaining validity, listing active
tokens, and cancelling one.

Two clocks are in play. The server assigns ExpiresAt and owns the token's
real status; the client runs a one-second countdown purely so the UI can
close an expired code without waiting for the next fetch. The countdown
never writes to the token's Status field.

Usage:

	svc := qrtoken.NewService(gw, session, cfg, logger)

	token, err := svc.Generate(ctx, amount, 15)

	cd := qrtoken.NewCountdown(token)
	cd.Start(func(remaining time.Duration) {
	    render(qrtoken.FormatRemaining(remaining))
	}, func() {
	    closeQRView()
	})
	defer cd.Stop()

	tokens, err := svc.ListActive(ctx)
	err = svc.Cancel(ctx, token.Token)
*/
package qrtoken
