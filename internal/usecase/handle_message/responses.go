package handle_message

import (
	"github.com/m04kA/SMC-ScheduleAssistant/internal/domain"
)

// Канонические ответы ассистента
const (
	msgSuccess      = "%sから%sまで%sを登録しました"
	msgConfirm      = "%sから%sで%sの予定を登録してよろしいですか？"
	msgNoSlots      = "%sの指定された時間帯に空き時間が見つかりませんでした"
	msgListHeader   = "以下の時間帯が空いています："
	msgFormatHelp   = "申し訳ありません。日時の指定方法が正しくありません。\n例：2月7日の13時から15時に会議を入れて"
	msgCancelled    = "かしこまりました。キャンセルしました。他の時間帯をご希望の場合はお知らせください。"
	msgSelectBounds = "1から%dの番号を選択してください"
	msgReadFailure  = "カレンダー情報の取得に失敗しました"
	msgWriteFailure = "申し訳ありません。予定の登録に失敗しました"
)

// formatRangeJa форматирует границы интервала для ответа пользователю
// Конец в пределах того же дня показывается без даты
func formatRangeJa(interval domain.TimeInterval) (string, string) {
	start := domain.FormatDateTimeJa(interval.Start)
	if interval.SameDay() {
		return start, interval.End.Format(domain.TimeFormat)
	}
	return start, domain.FormatDateTimeJa(interval.End)
}
