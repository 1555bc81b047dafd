package randx

import (
	"math/rand/v2"

	"github.com/seehuhn/mt19937"
)

// NewMT19937 は seed で初期化したメルセンヌ・ツイスタを源とする乱数生成器を返す。
// 同じ seed なら常に同じ系列になる。
func NewMT19937(seed int64) *rand.Rand {
	src := mt19937.New()
	src.Seed(seed)
	return rand.New(src)
}
