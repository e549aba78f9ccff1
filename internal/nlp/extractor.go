package nlp

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-ScheduleAssistant/internal/domain"
)

// Result структурированный результат разбора сообщения
// Start/End - запрошенное окно поиска в таймзоне экстрактора
type Result struct {
	Start   time.Time
	End     time.Time
	Title   string
	IsRange bool
	Intent  domain.Intent
}

// Extractor разбирает японские сообщения о встречах
// Детерминированный набор регулярных выражений; без сети и без состояния
type Extractor struct {
	loc               *time.Location
	businessStartHour int
	businessEndHour   int
}

var (
	dateRe          = regexp.MustCompile(`(\d{1,2})月(\d{1,2})日`)
	hourRangeRe     = regexp.MustCompile(`(\d{1,2})時(?:から|〜|～)(\d{1,2})時`)
	clockRangeRe    = regexp.MustCompile(`(\d{1,2}):(\d{2})(?:から|〜|～)(\d{1,2}):(\d{2})`)
	afternoonRe     = regexp.MustCompile(`午後`)
	titleRe         = regexp.MustCompile(`([^\sを、。]+?)を?(?:入れて|登録して|予定して|予約して)`)
	creationVerbRe  = regexp.MustCompile(`入れて|登録して|予定して|予約して`)
	availabilityRe  = regexp.MustCompile(`空き時間|空いて|空き`)
	cleanupRe       = regexp.MustCompile(`\d{1,2}月\d{1,2}日|\d{1,2}[:時]\d{0,2}(?:から|〜|～)?|\d{1,2}番で?|午後の?|空いてる時間に?|まで|から`)
)

// NewExtractor создает экстрактор для указанной таймзоны и рабочих часов
func NewExtractor(loc *time.Location, businessStartHour, businessEndHour int) *Extractor {
	return &Extractor{
		loc:               loc,
		businessStartHour: businessStartHour,
		businessEndHour:   businessEndHour,
	}
}

// Parse извлекает окно поиска, заголовок и намерение из текста
// Возвращает nil, если дату/время извлечь не удалось, указана
// несуществующая дата или явно запрошенное время лежит вне рабочих часов
func (e *Extractor) Parse(text string, now time.Time) *Result {
	now = now.In(e.loc)
	intent := e.classifyIntent(text)

	targetDate, hasDate, err := e.extractDate(text, now)
	if err != nil {
		return nil
	}
	if !hasDate {
		targetDate = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, e.loc)
	}

	// Явный диапазон часов: "13時から15時", "13:00〜15:00"
	if start, end, ok := e.extractTimeRange(text, targetDate); ok {
		if start.Hour() < e.businessStartHour || start.Hour() > e.businessEndHour ||
			(end.Hour() > e.businessEndHour || end.Hour() < e.businessStartHour) {
			return nil
		}
		if !start.Before(end) {
			return nil
		}
		return &Result{
			Start:   start,
			End:     end,
			Title:   e.ExtractTitle(text),
			IsRange: strings.ContainsAny(text, "〜～") || strings.Contains(text, "から"),
			Intent:  intent,
		}
	}

	// "午後" без явных часов: 13:00 - конец рабочего дня
	// Сегодняшнее "午後" не должно начинаться в прошлом
	if afternoonRe.MatchString(text) {
		start := targetDate.Add(13 * time.Hour)
		if start.Before(now) {
			start = now
		}
		return &Result{
			Start:   start,
			End:     targetDate.Add(time.Duration(e.businessEndHour) * time.Hour),
			Title:   e.ExtractTitle(text),
			IsRange: true,
			Intent:  intent,
		}
	}

	// Только дата: весь рабочий день
	if hasDate {
		return &Result{
			Start:   targetDate.Add(time.Duration(e.businessStartHour) * time.Hour),
			End:     targetDate.Add(time.Duration(e.businessEndHour) * time.Hour),
			Title:   e.ExtractTitle(text),
			IsRange: true,
			Intent:  intent,
		}
	}

	// Запрос свободного времени без даты: ближайшая неделя
	if intent == domain.IntentAvailabilityCheck {
		return &Result{
			Start:   now,
			End:     now.AddDate(0, 0, 7),
			Title:   domain.DefaultEventTitle,
			IsRange: true,
			Intent:  intent,
		}
	}

	return nil
}

// classifyIntent определяет намерение сообщения
// Глагол создания побеждает: "空いてる時間に会議を入れて" - это создание события
func (e *Extractor) classifyIntent(text string) domain.Intent {
	return e.ClassifyIntent(text)
}

// ClassifyIntent определяет намерение сообщения без разбора окна
// Используется оркестратором для сообщений вида "2番で..."
func (e *Extractor) ClassifyIntent(text string) domain.Intent {
	if creationVerbRe.MatchString(text) {
		return domain.IntentEventCreation
	}
	if availabilityRe.MatchString(text) {
		return domain.IntentAvailabilityCheck
	}
	return domain.IntentUnknown
}

// errInvalidDate помечает явно указанную, но несуществующую дату
var errInvalidDate = errors.New("nlp: invalid calendar date")

// extractDate извлекает дату вида "2月7日"
// Дата, уже прошедшая в этом году, трактуется как дата следующего года
// Упомянутая, но несуществующая дата (2月30日) возвращает errInvalidDate:
// подставлять вместо нее сегодняшний день нельзя
func (e *Extractor) extractDate(text string, now time.Time) (time.Time, bool, error) {
	m := dateRe.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false, nil
	}

	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false, errInvalidDate
	}

	target := time.Date(now.Year(), time.Month(month), day, 0, 0, 0, 0, e.loc)
	// Нормализация time.Date скрыла бы несуществующую дату (2月30日 -> 3月2日)
	if target.Month() != time.Month(month) || target.Day() != day {
		return time.Time{}, false, errInvalidDate
	}

	if target.AddDate(0, 0, 1).Before(now) {
		target = time.Date(now.Year()+1, time.Month(month), day, 0, 0, 0, 0, e.loc)
	}
	return target, true, nil
}

// extractTimeRange извлекает диапазон часов в рамках targetDate
func (e *Extractor) extractTimeRange(text string, targetDate time.Time) (time.Time, time.Time, bool) {
	if m := clockRangeRe.FindStringSubmatch(text); m != nil {
		sh, _ := strconv.Atoi(m[1])
		sm, _ := strconv.Atoi(m[2])
		eh, _ := strconv.Atoi(m[3])
		em, _ := strconv.Atoi(m[4])
		if sh > 23 || eh > 23 || sm > 59 || em > 59 {
			return time.Time{}, time.Time{}, false
		}
		start := targetDate.Add(time.Duration(sh)*time.Hour + time.Duration(sm)*time.Minute)
		end := targetDate.Add(time.Duration(eh)*time.Hour + time.Duration(em)*time.Minute)
		return start, end, true
	}

	if m := hourRangeRe.FindStringSubmatch(text); m != nil {
		sh, _ := strconv.Atoi(m[1])
		eh, _ := strconv.Atoi(m[2])
		if sh > 23 || eh > 23 {
			return time.Time{}, time.Time{}, false
		}
		start := targetDate.Add(time.Duration(sh) * time.Hour)
		end := targetDate.Add(time.Duration(eh) * time.Hour)
		return start, end, true
	}

	return time.Time{}, time.Time{}, false
}

// ExtractTitle извлекает название события ("会議を入れて" -> "会議")
// По умолчанию 会議
func (e *Extractor) ExtractTitle(text string) string {
	cleaned := cleanupRe.ReplaceAllString(text, "")

	m := titleRe.FindStringSubmatch(cleaned)
	if m == nil {
		return domain.DefaultEventTitle
	}

	title := trimParticles(strings.TrimSpace(m[1]))
	if title == "" || strings.Contains(title, "空き") || strings.Contains(title, "空いて") {
		return domain.DefaultEventTitle
	}
	return title
}

// trimParticles срезает ведущие и замыкающие частицы の/に/で,
// оставшиеся после вычистки дат и времен
func trimParticles(s string) string {
	particles := []string{"の", "に", "で"}
	for changed := true; changed; {
		changed = false
		for _, p := range particles {
			if strings.HasPrefix(s, p) {
				s = strings.TrimPrefix(s, p)
				changed = true
			}
			if strings.HasSuffix(s, p) {
				s = strings.TrimSuffix(s, p)
				changed = true
			}
		}
	}
	return s
}
