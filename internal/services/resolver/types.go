package resolver

// Kind tags the identification channel a counterparty reference came from.
type Kind string

const (
	KindQR       Kind = "qr"
	KindUsername Kind = "username"
	KindPhone    Kind = "phone"
	KindID       Kind = "id"
)

// Ref is a tagged counterparty reference. All four channels funnel through
// the one Resolve dispatch so the self-transfer guard and the error taxonomy
// are enforced in a single place.
type Ref struct {
	Kind  Kind
	Value string
}

// QRRef builds a reference from a raw scanned payload.
func QRRef(payload string) Ref { return Ref{Kind: KindQR, Value: payload} }

// UsernameRef builds a reference from a username.
func UsernameRef(username string) Ref { return Ref{Kind: KindUsername, Value: username} }

// PhoneRef builds a reference from a phone number.
func PhoneRef(phone string) Ref { return Ref{Kind: KindPhone, Value: phone} }

// IDRef builds a reference from a user id.
func IDRef(id string) Ref { return Ref{Kind: KindID, Value: id} }
