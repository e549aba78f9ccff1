package handle_message

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ScheduleAssistant/internal/domain"
	"github.com/m04kA/SMC-ScheduleAssistant/internal/infra/sessionstore"
	"github.com/m04kA/SMC-ScheduleAssistant/internal/nlp"
)

// Config параметры оркестратора диалога
type Config struct {
	Location           *time.Location
	MinBookingDuration time.Duration
	MinDisplayDuration time.Duration
	WidenEmptyResults  bool
	MaxListSlots       int
}

// UseCase use case обработки одного сообщения диалога
//
// Каждое сообщение - один атомарный ход: читается состояние, принимается
// решение, состояние записывается, возвращается ответ. Побочные эффекты
// ограничены чтением календаря, записью эфемерного состояния и - только
// на явное "はい" - одним вызовом создания события
type UseCase struct {
	calendar     CalendarProvider
	store        SessionStore
	extractor    Extractor
	slots        SlotService
	bookingLog   BookingLogRepository
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
	cfg          Config
}

// NewUseCase создает новый экземпляр use case
// bookingLog может быть nil, если журналирование в БД выключено
func NewUseCase(
	calendar CalendarProvider,
	store SessionStore,
	extractor Extractor,
	slots SlotService,
	bookingLog BookingLogRepository,
	metrics Metrics,
	cfg Config,
	logger Logger,
) *UseCase {
	if cfg.MaxListSlots <= 0 {
		cfg.MaxListSlots = domain.DefaultSelectionListMaxSlots
	}
	return &UseCase{
		calendar:     calendar,
		store:        store,
		extractor:    extractor,
		slots:        slots,
		bookingLog:   bookingLog,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		cfg:          cfg,
	}
}

// Execute выполняет один ход диалога
//
// Порядок классификации сообщения фиксирован:
//  1. выбор слота по номеру ("2番で...")
//  2. подтверждение ("はい")
//  3. отказ ("いいえ")
//  4. разбор нового запроса
//  5. подсказка о формате
//
// Номер проверяется первым: "2番で会議を入れて" - это выбор слота,
// хотя глагол создания сам по себе читался бы как новый запрос.
// Подтверждением считаются только はい/確認: любое другое сообщение
// при ожидании подтверждения обрабатывается как новый запрос
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("HandleMessage: validation failed: %v", err)
		return nil, err
	}

	text := strings.TrimSpace(req.Message)
	uc.logger.Info("HandleMessage: user=%s message=%q", req.UserID, text)

	if n, ok := nlp.MatchSlotIndex(text); ok {
		return uc.handleSelection(ctx, req.UserID, text, n)
	}

	if nlp.MatchConfirmYes(text) {
		return uc.handleYes(ctx, req.UserID)
	}

	if nlp.MatchConfirmNo(text) {
		return uc.handleNo(ctx, req.UserID)
	}

	return uc.handleNewRequest(ctx, req.UserID, text)
}

// handleYes подтверждает отложенное предложение
// Повторное "はい" после очистки PendingBooking отвечает подсказкой
// о формате и НЕ создает второе событие
func (uc *UseCase) handleYes(ctx context.Context, userID string) (*Response, error) {
	pending, err := uc.store.GetPending(ctx, userID)
	if errors.Is(err, sessionstore.ErrPendingNotFound) {
		uc.logger.Info("HandleMessage: stale confirmation from user=%s", userID)
		return uc.reply(outcomeStale, msgFormatHelp), nil
	}
	if err != nil {
		uc.logger.Error("HandleMessage: failed to load pending for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: failed to load pending: %v", ErrInternal, err)
	}

	// Запись в календарь пробуется ровно один раз: предложение снимается
	// в этом же ходе независимо от исхода
	created, createErr := uc.calendar.CreateEvent(ctx, userID, pending.Title, pending.Interval())

	if err := uc.store.DeletePending(ctx, userID); err != nil {
		uc.logger.Error("HandleMessage: failed to clear pending for user=%s: %v", userID, err)
	}

	if createErr != nil {
		uc.logger.Error("HandleMessage: failed to create event for user=%s: %v", userID, createErr)
		return uc.reply(outcomeWriteFailure, msgWriteFailure), nil
	}

	if err := uc.store.DeleteSelection(ctx, userID); err != nil {
		uc.logger.Warn("HandleMessage: failed to clear selection for user=%s: %v", userID, err)
	}

	uc.logBooking(ctx, userID, created.CalendarID, created.ID, pending)
	uc.metrics.IncBookingCreated()

	start, end := formatRangeJa(pending.Interval())
	uc.logger.Info("HandleMessage: booked event=%s for user=%s", created.ID, userID)
	return uc.reply(outcomeConfirmed, fmt.Sprintf(msgSuccess, start, end, pending.Title)), nil
}

// handleNo отклоняет отложенное предложение
func (uc *UseCase) handleNo(ctx context.Context, userID string) (*Response, error) {
	_, err := uc.store.GetPending(ctx, userID)
	if errors.Is(err, sessionstore.ErrPendingNotFound) {
		return uc.reply(outcomeStale, msgFormatHelp), nil
	}
	if err != nil {
		uc.logger.Error("HandleMessage: failed to load pending for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: failed to load pending: %v", ErrInternal, err)
	}

	if err := uc.store.DeletePending(ctx, userID); err != nil {
		uc.logger.Error("HandleMessage: failed to clear pending for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: failed to clear pending: %v", ErrInternal, err)
	}
	if err := uc.store.DeleteSelection(ctx, userID); err != nil {
		uc.logger.Warn("HandleMessage: failed to clear selection for user=%s: %v", userID, err)
	}

	return uc.reply(outcomeCancelled, msgCancelled), nil
}

// handleSelection разрешает выбор слота по номеру из показанного списка
// Номер всегда разрешается в слот исходно показанного списка, даже если
// календарь с тех пор изменился
func (uc *UseCase) handleSelection(ctx context.Context, userID, text string, n int) (*Response, error) {
	selection, err := uc.store.GetSelection(ctx, userID)
	if errors.Is(err, sessionstore.ErrSelectionNotFound) {
		uc.logger.Info("HandleMessage: selection expired for user=%s", userID)
		return uc.reply(outcomeInvalidIndex, msgFormatHelp), nil
	}
	if err != nil {
		uc.logger.Error("HandleMessage: failed to load selection for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: failed to load selection: %v", ErrInternal, err)
	}

	slot, ok := selection.ResolveIndex(n)
	if !ok {
		return uc.reply(outcomeInvalidIndex, fmt.Sprintf(msgSelectBounds, len(selection.Slots))), nil
	}

	// Просмотр выбранного слота без бронирования
	if uc.extractor.ClassifyIntent(text) == domain.IntentAvailabilityCheck {
		return uc.reply(outcomeRedisplayed, formatSlotLine(slot)), nil
	}

	return uc.propose(ctx, userID, slot, uc.extractor.ExtractTitle(text))
}

// handleNewRequest разбирает новый запрос и отвечает списком слотов
// или предложением на подтверждение
// Новый запрос замещает любое отложенное предложение
func (uc *UseCase) handleNewRequest(ctx context.Context, userID, text string) (*Response, error) {
	now := uc.timeProvider.Now().In(uc.cfg.Location)

	res := uc.extractor.Parse(text, now)
	if res == nil {
		return uc.reply(outcomeParseFailed, msgFormatHelp), nil
	}

	window := domain.TimeInterval{Start: res.Start, End: res.End}

	busy, err := uc.calendar.ListBusy(ctx, userID, window)
	if err != nil {
		// Состояние не меняется: пользователь повторяет весь ход
		uc.logger.Error("HandleMessage: calendar read failed for user=%s: %v", userID, err)
		return uc.reply(outcomeReadFailure, msgReadFailure), nil
	}

	if res.Intent == domain.IntentAvailabilityCheck {
		return uc.listAvailability(ctx, userID, busy, window)
	}

	// Неопознанное намерение с валидным окном трактуется как создание события
	return uc.proposeFromWindow(ctx, userID, busy, window, res.Title)
}

// listAvailability отвечает нумерованным списком свободных слотов окна
func (uc *UseCase) listAvailability(ctx context.Context, userID string, busy []domain.TimeInterval, window domain.TimeInterval) (*Response, error) {
	slots := uc.slots.FindFreeSlots(busy, window, uc.cfg.MinDisplayDuration)

	if len(slots) == 0 && uc.cfg.WidenEmptyResults {
		widened, err := uc.widenToFullDay(ctx, userID, window)
		if err == nil {
			slots = widened
		}
	}

	if len(slots) == 0 {
		return uc.reply(outcomeNoSlots, fmt.Sprintf(msgNoSlots, domain.FormatDateJa(window.Start))), nil
	}

	if len(slots) > uc.cfg.MaxListSlots {
		slots = slots[:uc.cfg.MaxListSlots]
	}

	if err := uc.store.SaveSelection(ctx, userID, domain.PendingSelection{Slots: slots}); err != nil {
		uc.logger.Error("HandleMessage: failed to save selection for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: failed to save selection: %v", ErrInternal, err)
	}

	return uc.reply(outcomeListed, msgListHeader+"\n"+uc.slots.FormatSlotList(slots)), nil
}

// proposeFromWindow выбирает лучший слот окна и предлагает его на подтверждение
// Кандидаты сохраняются списком, чтобы пользователь мог ответить "2番で..."
func (uc *UseCase) proposeFromWindow(ctx context.Context, userID string, busy []domain.TimeInterval, window domain.TimeInterval, title string) (*Response, error) {
	slots := uc.slots.FindFreeSlots(busy, window, uc.cfg.MinBookingDuration)
	if len(slots) == 0 {
		return uc.reply(outcomeNoSlots, fmt.Sprintf(msgNoSlots, domain.FormatDateJa(window.Start))), nil
	}

	slot, err := uc.slots.SelectSlot(slots, domain.StrategyEarliest, window.Start)
	if err != nil {
		uc.logger.Error("HandleMessage: slot selection failed for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: failed to select slot: %v", ErrInternal, err)
	}

	// Предлагается минимальная длительность бронирования от начала слота
	proposal := domain.FreeSlot{Start: slot.Start, End: slot.Start.Add(uc.cfg.MinBookingDuration)}
	if proposal.End.After(slot.End) {
		proposal.End = slot.End
	}

	if len(slots) > uc.cfg.MaxListSlots {
		slots = slots[:uc.cfg.MaxListSlots]
	}
	if err := uc.store.SaveSelection(ctx, userID, domain.PendingSelection{Slots: slots}); err != nil {
		uc.logger.Warn("HandleMessage: failed to save selection for user=%s: %v", userID, err)
	}

	return uc.propose(ctx, userID, proposal, title)
}

// propose сохраняет PendingBooking и отвечает запросом подтверждения
func (uc *UseCase) propose(ctx context.Context, userID string, slot domain.FreeSlot, title string) (*Response, error) {
	if title == "" {
		title = domain.DefaultEventTitle
	}

	pending := domain.PendingBooking{
		Start:  slot.Start,
		End:    slot.End,
		Title:  title,
		Intent: domain.IntentEventCreation,
	}
	if err := uc.store.SavePending(ctx, userID, pending); err != nil {
		uc.logger.Error("HandleMessage: failed to save pending for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: failed to save pending: %v", ErrInternal, err)
	}

	start, end := formatRangeJa(pending.Interval())
	return uc.reply(outcomeProposed, fmt.Sprintf(msgConfirm, start, end, title)), nil
}

// widenToFullDay пересчитывает слоты на весь рабочий день даты окна
func (uc *UseCase) widenToFullDay(ctx context.Context, userID string, window domain.TimeInterval) ([]domain.FreeSlot, error) {
	y, m, d := window.Start.Date()
	dayWindow := domain.TimeInterval{
		Start: time.Date(y, m, d, 0, 0, 0, 0, window.Start.Location()),
		End:   time.Date(y, m, d+1, 0, 0, 0, 0, window.Start.Location()),
	}

	busy, err := uc.calendar.ListBusy(ctx, userID, dayWindow)
	if err != nil {
		uc.logger.Warn("HandleMessage: widened calendar read failed for user=%s: %v", userID, err)
		return nil, err
	}
	return uc.slots.FindFreeSlots(busy, dayWindow, uc.cfg.MinDisplayDuration), nil
}

// logBooking пишет запись в журнал созданных событий (best effort)
func (uc *UseCase) logBooking(ctx context.Context, userID, calendarID, eventID string, pending *domain.PendingBooking) {
	if uc.bookingLog == nil {
		return
	}

	_, err := uc.bookingLog.Create(ctx, &domain.BookingLogEntry{
		UserID:     userID,
		CalendarID: calendarID,
		EventID:    eventID,
		Title:      pending.Title,
		StartTime:  pending.Start,
		EndTime:    pending.End,
		Source:     domain.BookingSourceChat,
	})
	if err != nil {
		uc.logger.Warn("HandleMessage: failed to log booking for user=%s: %v", userID, err)
	}
}

func (uc *UseCase) reply(outcome, message string) *Response {
	uc.metrics.IncTurn(outcome)
	return &Response{Reply: message}
}

// formatSlotLine форматирует один слот для повторного показа
func formatSlotLine(slot domain.FreeSlot) string {
	start, end := formatRangeJa(slot)
	return fmt.Sprintf("%s〜%s", start, end)
}
