package format

import (
	"encoding/json"

	"cellular-automat/src/universe"
)

const (
	jsonFormatName = "json"
	universeType2D = "2D"
	ruleTypeBS     = "BS"
	ruleTypeEEFF   = "EEFF"
)

//JSONFormat is the structured format
//only living cells are written, the rule is always written in the BS form
type JSONFormat struct{}

func (JSONFormat) isFormat() {}

func (JSONFormat) Name() string {
	return jsonFormatName
}

//field order is part of the format
type jsonConfiguration struct {
	Universe jsonUniverse `json:"universe"`
	Rule     jsonRule     `json:"rule"`
}

type jsonUniverse struct {
	Type    string                `json:"type"`
	Endless bool                  `json:"endless"`
	Width   int                   `json:"width"`
	Height  int                   `json:"height"`
	Cells   []universe.CellRecord `json:"cells"`
}

type jsonRule struct {
	Type string `json:"type"`
	Born []int  `json:"born"`
	Stay []int  `json:"stay"`
}

//jsonRuleIn accepts both rule forms
type jsonRuleIn struct {
	Type string `json:"type"`
	El   int    `json:"el"`
	Eu   int    `json:"eu"`
	Fl   int    `json:"fl"`
	Fu   int    `json:"fu"`
	Born []int  `json:"born"`
	Stay []int  `json:"stay"`
}

type jsonConfigurationIn struct {
	Universe *jsonUniverse `json:"universe"`
	Rule     *jsonRuleIn   `json:"rule"`
}

func (f JSONFormat) Encode(cfg *universe.Configuration) (string, error) {
	rule, err := universe.ToBS(cfg.Rule)
	if err != nil {
		return "", err
	}
	u := cfg.Universe
	cells := make([]universe.CellRecord, 0)
	for i := range u.Cells() {
		c := &u.Cells()[i]
		if c.Value() > 0 {
			cells = append(cells, c.Serialize())
		}
	}
	doc := jsonConfiguration{
		Universe: jsonUniverse{
			Type:    universeType2D,
			Endless: u.Endless(),
			Width:   u.Width(),
			Height:  u.Height(),
			Cells:   cells,
		},
		Rule: jsonRule{
			Type: ruleTypeBS,
			Born: nonNil(rule.Born),
			Stay: nonNil(rule.Stay),
		},
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (f JSONFormat) Decode(source string) (*universe.Configuration, error) {
	var doc jsonConfigurationIn
	if err := json.Unmarshal([]byte(source), &doc); err != nil {
		return nil, decodeError(jsonFormatName, ErrMalformedBody, "%v", err)
	}
	if doc.Universe == nil {
		return nil, decodeError(jsonFormatName, ErrMissingHeader, "no universe")
	}
	if doc.Rule == nil {
		return nil, decodeError(jsonFormatName, ErrMissingHeader, "no rule")
	}
	rule, err := decodeJSONRule(doc.Rule)
	if err != nil {
		return nil, err
	}

	ju := doc.Universe
	if ju.Type != universeType2D {
		return nil, decodeError(jsonFormatName, ErrUnknownUniverse, "%q", ju.Type)
	}
	if ju.Width < 0 || ju.Height < 0 {
		return nil, decodeError(jsonFormatName, ErrInvalidDimension, "%v x %v", ju.Width, ju.Height)
	}
	u := universe.New(ju.Width, ju.Height, ju.Endless)
	u.Reset()
	for _, c := range ju.Cells {
		if c.X < 0 || c.Y < 0 || c.X >= ju.Width || c.Y >= ju.Height {
			return nil, decodeError(jsonFormatName, ErrCellOutOfUniverse, "cell(x=%v, y=%v)", c.X, c.Y)
		}
		if c.V < 0 {
			return nil, decodeError(jsonFormatName, ErrMalformedBody, "cell(x=%v, y=%v) has negative value %v", c.X, c.Y, c.V)
		}
		u.CellAt(c.X, c.Y).Stage(c.V).Commit(true)
	}
	return universe.NewConfiguration(u, rule), nil
}

func decodeJSONRule(r *jsonRuleIn) (universe.Rule, error) {
	switch r.Type {
	case ruleTypeEEFF:
		for _, n := range []int{r.El, r.Eu, r.Fl, r.Fu} {
			if !validCount(n) {
				return nil, decodeError(jsonFormatName, ErrMalformedBody, "neighbour count %v outside 0..%v", n, maxNeighbours)
			}
		}
		return universe.EEFFRule{
			SurviveLower: r.El,
			SurviveUpper: r.Eu,
			BirthLower:   r.Fl,
			BirthUpper:   r.Fu,
		}, nil
	case ruleTypeBS:
		for _, n := range append(append([]int(nil), r.Born...), r.Stay...) {
			if !validCount(n) {
				return nil, decodeError(jsonFormatName, ErrMalformedBody, "neighbour count %v outside 0..%v", n, maxNeighbours)
			}
		}
		return universe.BSRule{Born: nonNil(r.Born), Stay: nonNil(r.Stay)}, nil
	}
	return nil, decodeError(jsonFormatName, ErrUnknownRule, "%q", r.Type)
}

//maxNeighbours is the largest count of living neighbours a cell can have
const maxNeighbours = 8

func validCount(n int) bool {
	return n >= 0 && n <= maxNeighbours
}

func nonNil(v []int) []int {
	if v == nil {
		return []int{}
	}
	return v
}
