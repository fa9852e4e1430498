package internaldefs

import (
	goToken "github.com/mereles-dev/goToken"
)

// CounterDef binds an issuer metric to its stable exported name.
type CounterDef struct {
	ID   goToken.MetricID
	Name string
	Help string
}

// CounterDefs lists every issuer counter in export order. Both exporters walk
// this table so metric names never drift between them.
var CounterDefs = []CounterDef{
	{ID: goToken.MetricIssued, Name: "gotoken_issued_total", Help: "Tokens generated through the issuer."},
	{ID: goToken.MetricVerifySuccess, Name: "gotoken_verify_success_total", Help: "Tokens that passed full verification."},
	{ID: goToken.MetricVerifyRejected, Name: "gotoken_verify_rejected_total", Help: "Tokens rejected as empty, malformed, or wrong id."},
	{ID: goToken.MetricVerifyExpired, Name: "gotoken_verify_expired_total", Help: "Tokens rejected as past due."},
	{ID: goToken.MetricVerifyConsumed, Name: "gotoken_verify_consumed_total", Help: "Replay rejections for already-consumed tokens."},
	{ID: goToken.MetricRedeemed, Name: "gotoken_redeemed_total", Help: "Successful one-shot redemptions."},
}
