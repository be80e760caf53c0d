package models

// Account is a registered user identity. ID is zero until the store assigns
// one on insert. The password is stored and compared as plain text and is
// serialized on the wire, matching the persisted schema exactly.
type Account struct {
	ID       int64  `json:"account_id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Message is a text post authored by an account. PostedBy must reference an
// account that existed at creation time; PostedBy and PostedAtEpoch are
// immutable after creation, only Text may change.
type Message struct {
	ID            int64  `json:"message_id"`
	PostedBy      int64  `json:"posted_by"`
	Text          string `json:"message_text"`
	PostedAtEpoch int64  `json:"time_posted_epoch"`
}
