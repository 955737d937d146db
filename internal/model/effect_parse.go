package model

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

type paramSpec struct {
	name   string
	format string
}

type effectSpec struct {
	kind   EffectKind
	params []paramSpec
}

var (
	timesParam = paramSpec{name: "times", format: "times=<u8>"}
	numParam   = paramSpec{name: "num", format: "num=<unsigned integer>"}
)

// effectSpecs maps every accepted effect name to its parameter schema.
// AdvanceSelf and DisadvanceSelf are older names for PushSelf and PullSelf.
var effectSpecs = map[string]effectSpec{
	"NoEffect":       {kind: EffectNone},
	"GoToStart":      {kind: EffectGoToStart},
	"SkipSelf":       {kind: EffectSkipSelf, params: []paramSpec{timesParam}},
	"PushSelf":       {kind: EffectPushSelf, params: []paramSpec{numParam}},
	"AdvanceSelf":    {kind: EffectPushSelf, params: []paramSpec{numParam}},
	"PullSelf":       {kind: EffectPullSelf, params: []paramSpec{numParam}},
	"DisadvanceSelf": {kind: EffectPullSelf, params: []paramSpec{numParam}},
	"PushOthersAll":  {kind: EffectPushOthersAll, params: []paramSpec{numParam}},
	"PullOthersAll":  {kind: EffectPullOthersAll, params: []paramSpec{numParam}},
}

type param struct {
	key   string
	value string
}

// ParseEffect builds an effect from the board file syntax
// "EffectName: key1=val1, key2=val2". Whitespace is ignored.
func ParseEffect(text string) (Effect, error) {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)

	parts := strings.SplitN(compact, ":", 2)
	if len(parts) != 2 {
		return Effect{}, fmt.Errorf("%w: %q, format: <EffectName>: <key>=<value>, ...", ErrEffectFormat, text)
	}
	name, blob := parts[0], parts[1]

	spec, ok := effectSpecs[name]
	if !ok {
		return Effect{}, fmt.Errorf("%w: %s", ErrAreaTypeNotFound, name)
	}

	params, err := splitParams(name, blob)
	if err != nil {
		return Effect{}, err
	}

	values := make(map[string]string, len(params))
	for _, p := range params {
		if !spec.accepts(p.key) {
			return Effect{}, fmt.Errorf("%w for %s: %s", ErrWrongParameter, name, p.key)
		}
		values[p.key] = p.value
	}
	for _, ps := range spec.params {
		if _, ok := values[ps.name]; !ok {
			return Effect{}, fmt.Errorf("%w for %s: %s, format: %s", ErrMissingParameter, name, ps.name, ps.format)
		}
	}

	effect := Effect{Kind: spec.kind}
	switch spec.kind {
	case EffectSkipSelf:
		times, err := strconv.ParseUint(values[timesParam.name], 10, 8)
		if err != nil {
			return Effect{}, parseFailure(name, timesParam, values[timesParam.name])
		}
		effect.Times = uint8(times)
	case EffectPushSelf, EffectPullSelf, EffectPushOthersAll, EffectPullOthersAll:
		num, err := strconv.ParseUint(values[numParam.name], 10, strconv.IntSize-1)
		if err != nil {
			return Effect{}, parseFailure(name, numParam, values[numParam.name])
		}
		effect.Num = int(num)
	}
	return effect, nil
}

// MustParseEffect is like ParseEffect but panics on error
func MustParseEffect(text string) Effect {
	effect, err := ParseEffect(text)
	if err != nil {
		panic(err)
	}
	return effect
}

func (s effectSpec) accepts(key string) bool {
	for _, p := range s.params {
		if p.name == key {
			return true
		}
	}
	return false
}

// splitParams splits "k1=v1,k2=v2" keeping declaration order
func splitParams(name, blob string) ([]param, error) {
	if blob == "" {
		return nil, nil
	}

	var params []param
	seen := make(map[string]struct{})
	for _, pair := range strings.Split(blob, ",") {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("%w: %s parameter %q, format: <key>=<value>", ErrEffectFormat, name, pair)
		}
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w for %s: %s", ErrDuplicateParameter, name, key)
		}
		seen[key] = struct{}{}
		params = append(params, param{key: key, value: value})
	}
	return params, nil
}

func parseFailure(name string, spec paramSpec, value string) error {
	return fmt.Errorf("%w for %s: %s=%q, format: %s", ErrParameterParse, name, spec.name, value, spec.format)
}
