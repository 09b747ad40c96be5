package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenRandomID(t *testing.T) {
	SetupIDWorker(1)

	a, b := GenSpecIDStr(), GenSpecIDStr()
	assert.NotEqual(t, a, b)
	assert.Len(t, GenRandomID(), 32)
}

func Test_ParseAcceptLanguage(t *testing.T) {
	res := ParseAcceptLanguage("zh-CN,zh;q=0.9,en-US;q=0.8,en;q=0.7")
	if assert.Len(t, res, 4) {
		assert.Equal(t, "zh-CN", res[0].Tag)
		assert.Equal(t, "en", res[3].Tag)
	}
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2024, 3, 1, 23, 30, 0, 0, time.UTC).Unix()

	assert.Equal(t, "2024-03-01", FormatDate(ts, nil))
	assert.Equal(t, "2024-03-02", FormatDate(ts, time.FixedZone("UTC+8", 8*3600)))
}
