package handle_message

// Request входные данные одного хода диалога
type Request struct {
	UserID  string
	Message string
}

// Response ответ ассистента на один ход диалога
type Response struct {
	Reply string
}

// Итоги хода для метрик
const (
	outcomeProposed     = "proposed"
	outcomeListed       = "listed"
	outcomeConfirmed    = "confirmed"
	outcomeCancelled    = "cancelled"
	outcomeStale        = "stale_confirmation"
	outcomeRedisplayed  = "redisplayed"
	outcomeInvalidIndex = "invalid_index"
	outcomeParseFailed  = "parse_failed"
	outcomeNoSlots      = "no_slots"
	outcomeReadFailure  = "read_failure"
	outcomeWriteFailure = "write_failure"
)
