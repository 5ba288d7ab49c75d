package contact

import "net/http"

// Kind names a gate result.
type Kind string

const (
	KindAccepted      Kind = "accepted"
	KindRateLimited   Kind = "rate_limited"
	KindSpam          Kind = "spam"
	KindTooFast       Kind = "too_fast"
	KindMissingFields Kind = "missing_fields"
	KindInvalidEmail  Kind = "invalid_email"
	KindMisconfigured Kind = "misconfigured"
	KindRelayFailed   Kind = "relay_failed"
	KindInternal      Kind = "internal_error"
)

// Outcome is the fixed response for a Kind.
type Outcome struct {
	Kind    Kind
	Status  int
	Message string
}

// Success reports whether the submission was relayed.
func (o Outcome) Success() bool {
	return o.Kind == KindAccepted
}

var outcomes = map[Kind]Outcome{
	KindAccepted:      {KindAccepted, http.StatusOK, "Tack för ditt meddelande! Vi återkommer så snart som möjligt."},
	KindRateLimited:   {KindRateLimited, http.StatusTooManyRequests, "För många förfrågningar. Vänligen försök igen om en minut."},
	KindSpam:          {KindSpam, http.StatusBadRequest, "Spam detected."},
	KindTooFast:       {KindTooFast, http.StatusBadRequest, "Formuläret skickades för snabbt."},
	KindMissingFields: {KindMissingFields, http.StatusBadRequest, "Vänligen fyll i alla obligatoriska fält."},
	KindInvalidEmail:  {KindInvalidEmail, http.StatusBadRequest, "Vänligen ange en giltig e-postadress."},
	KindMisconfigured: {KindMisconfigured, http.StatusInternalServerError, "Formuläret är inte korrekt konfigurerat."},
	KindRelayFailed:   {KindRelayFailed, http.StatusInternalServerError, "Ett fel uppstod vid skickandet. Försök igen senare."},
	KindInternal:      {KindInternal, http.StatusInternalServerError, "Ett oväntat fel uppstod. Försök igen senare."},
}

// OutcomeFor returns the response for k. Unknown kinds map to KindInternal.
func OutcomeFor(k Kind) Outcome {
	if o, ok := outcomes[k]; ok {
		return o
	}
	return outcomes[KindInternal]
}
