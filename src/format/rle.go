package format

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"cellular-automat/src/universe"
)

const (
	rleFormatName = "rle"
	rleAlive      = 'o'
	rleDead       = 'b'
	rleEndOfLine  = '$'
	rleEnd        = '!'
)

var (
	rleHeader = []string{
		"#C RLE - https://www.conwaylife.com/wiki/Run_Length_Encoded",
		"#C generated by cellular-automat - https://github.com/thomasvolk/cellular-automat",
	}
	rleSizeRe = regexp.MustCompile(`(?i)\bx\s*=\s*(\d+)\s*,\s*y\s*=\s*(\d+)`)
	rleRuleRe = regexp.MustCompile(`(?i)\brule\s*=\s*([^\s,]+)`)
	rleBodyRe = regexp.MustCompile(`^[0-9bo.$!]+$`)
)

//RLEFormat is the run length encoded pattern format
//https://www.conwaylife.com/wiki/Run_Length_Encoded
//cells are alive or dead only, values > 1 are written as alive
type RLEFormat struct{}

func (RLEFormat) isFormat() {}

func (RLEFormat) Name() string {
	return rleFormatName
}

func (f RLEFormat) Encode(cfg *universe.Configuration) (string, error) {
	rule, err := universe.ToBS(cfg.Rule)
	if err != nil {
		return "", err
	}
	u := cfg.Universe
	var b strings.Builder
	for _, l := range rleHeader {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "x = %d, y = %d, rule = %s\n", u.Width(), u.Height(), rule.String())

	rows := make([]string, 0, u.Height())
	for y := 0; y < u.Height(); y++ {
		rows = append(rows, encodeRow(u, y))
	}
	//trailing dead rows are dropped
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	b.WriteString(strings.Join(rows, string(rleEndOfLine)))
	b.WriteByte(rleEnd)
	b.WriteByte('\n')
	return b.String(), nil
}

//encodeRow returns the compressed row without the trailing dead cells
func encodeRow(u *universe.Universe, y int) string {
	last := -1
	for x := 0; x < u.Width(); x++ {
		if u.CellAt(x, y).Alive() {
			last = x
		}
	}
	var b strings.Builder
	run, count := byte(0), 0
	flush := func() {
		if count > 1 {
			b.WriteString(strconv.Itoa(count))
		}
		if count > 0 {
			b.WriteByte(run)
		}
	}
	for x := 0; x <= last; x++ {
		ch := byte(rleDead)
		if u.CellAt(x, y).Alive() {
			ch = rleAlive
		}
		if ch != run {
			flush()
			run, count = ch, 0
		}
		count++
	}
	flush()
	return b.String()
}

func (f RLEFormat) Decode(source string) (*universe.Configuration, error) {
	lines := strings.Split(strings.ReplaceAll(source, "\r\n", "\n"), "\n")

	width, height := -1, -1
	var rule universe.Rule = universe.Conway()
	var body strings.Builder
	for _, l := range lines {
		l = strings.TrimSpace(l)
		if l == "" || strings.HasPrefix(l, "#") {
			continue
		}
		if width < 0 {
			if m := rleSizeRe.FindStringSubmatch(l); m != nil {
				var err error
				if width, err = strconv.Atoi(m[1]); err != nil {
					return nil, decodeError(rleFormatName, ErrInvalidDimension, "x = %s", m[1])
				}
				if height, err = strconv.Atoi(m[2]); err != nil {
					return nil, decodeError(rleFormatName, ErrInvalidDimension, "y = %s", m[2])
				}
				if r := rleRuleRe.FindStringSubmatch(l); r != nil {
					bs, err := universe.ParseBS(r[1])
					if err != nil {
						return nil, decodeError(rleFormatName, ErrUnknownRule, "%q", r[1])
					}
					rule = bs
				}
				continue
			}
		}
		if rleBodyRe.MatchString(l) {
			body.WriteString(l)
		}
	}
	if width < 0 {
		return nil, decodeError(rleFormatName, ErrMissingHeader, "no line with x = <width>, y = <height>")
	}

	u := universe.New(width, height, true)
	if err := plot(u, body.String()); err != nil {
		return nil, err
	}
	return universe.NewConfiguration(u, rule), nil
}

//plot expands the body runs and sets the alive cells
func plot(u *universe.Universe, body string) error {
	if i := strings.IndexByte(body, rleEnd); i >= 0 {
		body = body[:i]
	}
	//no run can be longer than a row or a column
	maxRun := u.Width()
	if u.Height() > maxRun {
		maxRun = u.Height()
	}
	x, y, count := 0, 0, 0
	for i := 0; i < len(body); i++ {
		ch := body[i]
		if ch >= '0' && ch <= '9' {
			count = count*10 + int(ch-'0')
			if count > maxRun {
				return decodeError(rleFormatName, ErrMalformedBody, "run count %s... exceeds %dx%d", body[:i+1], u.Width(), u.Height())
			}
			continue
		}
		n := count
		if n == 0 {
			n = 1
		}
		count = 0
		switch ch {
		case rleEndOfLine:
			x = 0
			y += n
		case rleDead, '.':
			x += n
		case rleAlive:
			if x < 0 || y < 0 || y >= u.Height() || x+n > u.Width() {
				return decodeError(rleFormatName, ErrMalformedBody, "run of %d cells at x=%d, y=%d exceeds %dx%d", n, x, y, u.Width(), u.Height())
			}
			for ; n > 0; n-- {
				u.CellAt(x, y).Stage(1).Commit(true)
				x++
			}
		}
	}
	if count > 0 {
		return decodeError(rleFormatName, ErrMalformedBody, "run count %d without a cell", count)
	}
	return nil
}
