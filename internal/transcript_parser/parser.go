// Package transcript_parser converts exported KakaoTalk chat transcripts into
// per-date ordered message lists. Two incompatible plain-text export formats
// are supported (desktop and mobile); the format is detected from the content
// itself. Both grammars are permissive: lines matching neither rule are
// silently skipped, so a noisy transcript yields fewer messages, never an error.
package transcript_parser

import (
	"regexp"
	"strings"
)

// Format identifies which export grammar produced a transcript.
type Format int

const (
	FormatDesktop Format = iota
	FormatMobile
)

func (f Format) String() string {
	if f == FormatMobile {
		return "MOBILE"
	}
	return "DESKTOP"
}

// DateGroup holds the messages of one date label, in transcript order.
// The date label is kept verbatim as the export formatted it.
type DateGroup struct {
	Date     string
	Messages []string
}

const (
	// Only the mobile export carries a "저장한 날짜 :" header line.
	mobileMarker  = "저장한 날짜 :"
	dateSeparator = "---------------"
	// The exports write file attachments as "파일: <name>" message bodies.
	attachmentPrefix = "파일:"
)

var (
	desktopDateRe = regexp.MustCompile(`\d{4}년 \d{1,2}월 \d{1,2}일 [월화수목금토일]요일`)
	weekdayRe     = regexp.MustCompile(` [월화수목금토일]요일$`)
	desktopMsgRe  = regexp.MustCompile(`^\[([^\]]*)\] \[([^\]]*)\] (.*)`)
	mobileDateRe  = regexp.MustCompile(`^\d{4}년 \d{1,2}월 \d{1,2}일`)
)

// DetectFormat reports which export grammar the transcript uses.
func DetectFormat(content string) Format {
	if strings.Contains(content, mobileMarker) &&
		strings.Contains(content, "년") &&
		strings.Contains(content, "월") &&
		strings.Contains(content, "일") {
		return FormatMobile
	}
	return FormatDesktop
}

// Parse converts the full transcript text into date groups ordered by first
// appearance. Messages within a group keep transcript order. Attachment
// placeholders and empty message bodies are dropped.
func Parse(content string) []DateGroup {
	if DetectFormat(content) == FormatMobile {
		return parseMobile(content)
	}
	return parseDesktop(content)
}

// groupBuilder accumulates messages keyed by date label while preserving the
// order in which date labels first receive a message.
type groupBuilder struct {
	groups []DateGroup
	index  map[string]int
}

func newGroupBuilder() *groupBuilder {
	return &groupBuilder{index: make(map[string]int)}
}

func (b *groupBuilder) append(date, message string) {
	i, ok := b.index[date]
	if !ok {
		i = len(b.groups)
		b.index[date] = i
		b.groups = append(b.groups, DateGroup{Date: date})
	}
	b.groups[i].Messages = append(b.groups[i].Messages, message)
}

func qualifiesAsMessage(message string) bool {
	return message != "" && !strings.HasPrefix(message, attachmentPrefix)
}

func parseDesktop(content string) []DateGroup {
	b := newGroupBuilder()
	currentDate := ""

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		// Date separator, e.g. "--------------- 2025년 5월 31일 토요일 ---------------".
		if strings.Contains(line, dateSeparator) {
			if match := desktopDateRe.FindString(line); match != "" {
				currentDate = weekdayRe.ReplaceAllString(match, "")
			}
			continue
		}

		// Message line, e.g. "[오빠] [오후 10:08] 요즘 왜 자꾸 답장 늦게 해?".
		if currentDate == "" || !strings.Contains(line, "]") {
			continue
		}
		m := desktopMsgRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		message := strings.TrimSpace(m[3])
		if qualifiesAsMessage(message) {
			b.append(currentDate, message)
		}
	}

	return b.groups
}

func parseMobile(content string) []DateGroup {
	b := newGroupBuilder()
	currentDate := ""

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		isDateLine := strings.Contains(line, "년") && strings.Contains(line, "월") && strings.Contains(line, "일")
		if isDateLine {
			if !strings.Contains(line, ":") {
				// Pure date line, e.g. "2025년 4월 30일".
				currentDate = line
				continue
			}
			// Date-and-message line, e.g. "2025년 4월 30일 오전 3:58, 권재희 : 안녕".
			// The date label is the leading date of the pre-comma prefix (the
			// clock time is not part of the label); the message follows the
			// sender-name colon in the remainder.
			prefix, rest, _ := strings.Cut(line, ",")
			prefix = strings.TrimSpace(prefix)
			if match := mobileDateRe.FindString(prefix); match != "" {
				currentDate = match
			} else {
				currentDate = prefix
			}
			if _, after, ok := strings.Cut(rest, ":"); ok {
				message := strings.TrimSpace(after)
				if qualifiesAsMessage(message) {
					b.append(currentDate, message)
				}
			}
			continue
		}

		// Continuation message line, e.g. "권재희 : 잘 지냈어?".
		if strings.Contains(line, ":") && currentDate != "" {
			_, after, _ := strings.Cut(line, ":")
			message := strings.TrimSpace(after)
			if qualifiesAsMessage(message) {
				b.append(currentDate, message)
			}
		}
	}

	return b.groups
}
