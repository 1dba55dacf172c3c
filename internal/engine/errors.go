package engine

// Error is a typed engine failure. Code is a stable machine-readable
// identifier; Message is the human string. Every rejected action leaves
// game state unchanged.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string { return e.Message }

var (
	ErrNotFound            = &Error{Code: "not_found", Message: "game, player or request not found"}
	ErrForbidden           = &Error{Code: "forbidden", Message: "caller is not allowed to perform this action"}
	ErrWrongPhase          = &Error{Code: "wrong_phase", Message: "action is not valid in the current phase"}
	ErrPhaseNotStarted     = &Error{Code: "phase_not_started", Message: "the host has not opened this phase yet"}
	ErrAlreadyActed        = &Error{Code: "already_acted", Message: "role has already acted this night"}
	ErrInsufficientPlayers = &Error{Code: "insufficient_players", Message: "at least 6 players are required to assign roles"}
	ErrGameFull            = &Error{Code: "game_full", Message: "game has reached the player cap"}
	ErrGameStarted         = &Error{Code: "game_already_started", Message: "game has already started"}
	ErrDuplicateClient     = &Error{Code: "duplicate_client", Message: "this client has already joined the game"}
	ErrCodeExhaustion      = &Error{Code: "code_exhaustion", Message: "could not allocate a unique game code"}
	ErrValidation          = &Error{Code: "validation_error", Message: "malformed or invalid input"}
	ErrStorageUnavailable  = &Error{Code: "storage_unavailable", Message: "storage is temporarily unavailable"}
)
