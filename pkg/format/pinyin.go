package format

import (
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/patrickmn/go-cache"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// 每个拼音首字母对应该字母下排序最靠前的参考字（近似边界），I/U/V 不作声母
var pinyinRefs = []struct {
	letter string
	ref    string
}{
	{"A", "阿"}, {"B", "芭"}, {"C", "擦"}, {"D", "搭"}, {"E", "蛾"},
	{"F", "发"}, {"G", "噶"}, {"H", "哈"}, {"J", "击"}, {"K", "喀"},
	{"L", "垃"}, {"M", "妈"}, {"N", "拿"}, {"O", "哦"}, {"P", "啪"},
	{"Q", "期"}, {"R", "然"}, {"S", "撒"}, {"T", "塌"}, {"W", "挖"},
	{"X", "昔"}, {"Y", "压"}, {"Z", "匝"},
}

const (
	cjkFirst = '一'
	cjkLast  = '龥'
)

var (
	collatorMu sync.Mutex
	collator   = collate.New(language.Chinese)

	letterCache = cache.New(cache.NoExpiration, 0)
)

// FirstPinyinLetter 取首字的拼音首字母
// 英文字母转大写，非汉字原样返回，空串返回空串
func FirstPinyinLetter(s string) string {
	if s == "" {
		return ""
	}

	r, _ := utf8.DecodeRuneInString(s)
	first := string(r)

	if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
		return strings.ToUpper(first)
	}
	if r < cjkFirst || r > cjkLast {
		return first
	}

	if v, ok := letterCache.Get(first); ok {
		return v.(string)
	}

	letter := bucket(first)
	letterCache.SetDefault(first, letter)
	return letter
}

// bucket 从后往前找第一个排序不大于该字的参考字
func bucket(char string) string {
	collatorMu.Lock()
	defer collatorMu.Unlock()

	for i := len(pinyinRefs) - 1; i >= 0; i-- {
		if collator.CompareString(char, pinyinRefs[i].ref) >= 0 {
			return pinyinRefs[i].letter
		}
	}
	return char
}
