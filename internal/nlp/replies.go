package nlp

import (
	"regexp"
	"strconv"
)

var (
	// Вежливый суффикс "お願いします" не подтверждение:
	// им заканчиваются и совершенно новые запросы
	yesRe       = regexp.MustCompile(`はい|確認`)
	noRe        = regexp.MustCompile(`いいえ|やめて|キャンセル|不要`)
	slotIndexRe = regexp.MustCompile(`^(\d{1,2})番`)
)

// MatchConfirmYes распознает подтверждение предложенного слота
func MatchConfirmYes(text string) bool {
	return yesRe.MatchString(text) && !noRe.MatchString(text)
}

// MatchConfirmNo распознает отказ от предложенного слота
func MatchConfirmNo(text string) bool {
	return noRe.MatchString(text)
}

// MatchSlotIndex распознает выбор слота по номеру ("2番で...")
// Номер 1-базный; проверка границ остается за оркестратором
func MatchSlotIndex(text string) (int, bool) {
	m := slotIndexRe.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}
