package transcript_parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Format
	}{
		{
			name:    "mobile header",
			content: "대화 내용\n저장한 날짜 : 2025년 4월 30일 오전 4:00\n",
			want:    FormatMobile,
		},
		{
			name:    "desktop separators",
			content: "--------------- 2025년 5월 31일 토요일 ---------------\n[오빠] [오후 10:08] 안녕",
			want:    FormatDesktop,
		},
		{
			name:    "mobile marker without date parts stays desktop",
			content: "저장한 날짜 : unknown",
			want:    FormatDesktop,
		},
		{
			name:    "empty content",
			content: "",
			want:    FormatDesktop,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFormat(tt.content))
		})
	}
}

func TestParseDesktop(t *testing.T) {
	content := "--------------- 2025년 5월 31일 토요일 ---------------\n" +
		"[오빠] [오후 10:08] 요즘 왜 자꾸 답장 늦게 해?"

	groups := Parse(content)
	require.Len(t, groups, 1)
	assert.Equal(t, "2025년 5월 31일", groups[0].Date)
	assert.Equal(t, []string{"요즘 왜 자꾸 답장 늦게 해?"}, groups[0].Messages)
}

func TestParseDesktopMultipleDates(t *testing.T) {
	content := "--------------- 2025년 5월 31일 토요일 ---------------\n" +
		"[오빠] [오후 10:08] 첫번째 메시지\n" +
		"[권재희] [오후 10:09] 두번째 메시지\n" +
		"\n" +
		"--------------- 2025년 6월 1일 일요일 ---------------\n" +
		"[오빠] [오전 9:00] 세번째 메시지\n"

	groups := Parse(content)
	require.Len(t, groups, 2)
	assert.Equal(t, "2025년 5월 31일", groups[0].Date)
	assert.Equal(t, []string{"첫번째 메시지", "두번째 메시지"}, groups[0].Messages)
	assert.Equal(t, "2025년 6월 1일", groups[1].Date)
	assert.Equal(t, []string{"세번째 메시지"}, groups[1].Messages)
}

func TestParseDesktopSkipsMalformedLines(t *testing.T) {
	content := "--------------- 2025년 5월 31일 토요일 ---------------\n" +
		"[오빠] [오후 10:08] 정상 메시지\n" +
		"이 줄은 형식이 아님\n" +
		"[이름만 있는 줄\n" +
		"--------------- 구분선이지만 날짜 없음 ---------------\n" +
		"[오빠] [오후 10:10] 마지막 메시지\n"

	groups := Parse(content)
	require.Len(t, groups, 1)
	assert.Equal(t, []string{"정상 메시지", "마지막 메시지"}, groups[0].Messages)
}

func TestParseDesktopMessagesBeforeDateIgnored(t *testing.T) {
	content := "[오빠] [오후 10:08] 날짜 이전 메시지\n" +
		"--------------- 2025년 5월 31일 토요일 ---------------\n" +
		"[오빠] [오후 10:09] 날짜 이후 메시지\n"

	groups := Parse(content)
	require.Len(t, groups, 1)
	assert.Equal(t, []string{"날짜 이후 메시지"}, groups[0].Messages)
}

func TestParseMobile(t *testing.T) {
	content := "권재희님과의 대화\n" +
		"저장한 날짜 : 2025년 4월 30일 오전 4:00\n" +
		"\n" +
		"2025년 4월 30일 오전 3:58, 권재희 : 안녕"

	groups := Parse(content)
	require.NotEmpty(t, groups)
	last := groups[len(groups)-1]
	assert.Equal(t, "2025년 4월 30일", last.Date)
	assert.Equal(t, []string{"안녕"}, last.Messages)
}

func TestParseMobileContinuationLines(t *testing.T) {
	content := "저장한 날짜 : 2025년 4월 30일\n" +
		"2025년 4월 30일\n" +
		"권재희 : 첫번째\n" +
		"권재희 : 두번째\n"

	groups := Parse(content)
	require.Len(t, groups, 1)
	assert.Equal(t, "2025년 4월 30일", groups[0].Date)
	assert.Equal(t, []string{"첫번째", "두번째"}, groups[0].Messages)
}

func TestParseMobileContinuationWithoutDateIgnored(t *testing.T) {
	// A continuation line arriving before any date line must be dropped.
	content := "저장한 날짜 :\n" +
		"권재희 : 날짜 없는 메시지\n" +
		"2025년 4월 30일\n" +
		"권재희 : 이후 메시지\n"

	groups := Parse(content)
	require.Len(t, groups, 1)
	assert.Equal(t, "2025년 4월 30일", groups[0].Date)
	assert.Equal(t, []string{"이후 메시지"}, groups[0].Messages)
}

func TestParseAttachmentsFiltered(t *testing.T) {
	desktop := "--------------- 2025년 5월 31일 토요일 ---------------\n" +
		"[오빠] [오후 10:08] 파일: image.jpg\n" +
		"[오빠] [오후 10:09] 진짜 메시지\n"
	groups := Parse(desktop)
	require.Len(t, groups, 1)
	assert.Equal(t, []string{"진짜 메시지"}, groups[0].Messages)

	mobile := "저장한 날짜 : 2025년 4월 30일\n" +
		"2025년 4월 30일\n" +
		"권재희 : 파일: image.jpg\n" +
		"권재희 : 진짜 메시지\n"
	groups = Parse(mobile)
	require.Len(t, groups, 1)
	assert.Equal(t, []string{"진짜 메시지"}, groups[0].Messages)
}

func TestParseEmptyMessagesFiltered(t *testing.T) {
	content := "--------------- 2025년 5월 31일 토요일 ---------------\n" +
		"[오빠] [오후 10:08] \n" +
		"[오빠] [오후 10:09] 내용 있는 메시지\n"

	groups := Parse(content)
	require.Len(t, groups, 1)
	assert.Equal(t, []string{"내용 있는 메시지"}, groups[0].Messages)
}

func TestParseDuplicateDateLabelsMerge(t *testing.T) {
	content := "--------------- 2025년 5월 31일 토요일 ---------------\n" +
		"[오빠] [오후 10:08] 하나\n" +
		"--------------- 2025년 6월 1일 일요일 ---------------\n" +
		"[오빠] [오전 9:00] 둘\n" +
		"--------------- 2025년 5월 31일 토요일 ---------------\n" +
		"[오빠] [오후 11:00] 셋\n"

	groups := Parse(content)
	require.Len(t, groups, 2)
	assert.Equal(t, "2025년 5월 31일", groups[0].Date)
	assert.Equal(t, []string{"하나", "셋"}, groups[0].Messages)
	assert.Equal(t, []string{"둘"}, groups[1].Messages)
}

func TestParseEmptyTranscript(t *testing.T) {
	assert.Empty(t, Parse(""))
	assert.Empty(t, Parse("\n\n\n"))
	assert.Empty(t, Parse("아무 형식도 아닌 텍스트"))
}
