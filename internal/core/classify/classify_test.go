package classify

import (
	"strings"
	"sync"
	"testing"

	"golang.org/x/text/unicode/norm"
)

func TestExplain_Rules(t *testing.T) {
	kw := KeywordConfig{
		Blacklist: []string{"judol", "SLOT gacor", "pulau"},
		Whitelist: []string{"not judol"},
	}
	cases := []struct {
		name   string
		text   string
		spam   bool
		reason string
	}{
		{"plain text", "Great video, thanks!", false, ReasonNone},
		{"empty text", "", false, ReasonNone},
		{"blacklist hit", "Main judol sekarang", true, ReasonBlacklist},
		{"case insensitive", "DAFTAR JUDOL88 SEKARANG", true, ReasonBlacklist},
		{"upper-cased entry", "ada slot gacor hari ini", true, ReasonBlacklist},
		{"partial word counts", "populasi pulauan", true, ReasonBlacklist},
		{"whitelist overrides", "this is not judol content", false, ReasonNone},
		{"circled letters", "Ⓒⓐⓢⓘⓝⓞ", true, ReasonNormalization},
		{"fullwidth letters", "ＣＡＳＩＮＯ ｇａｃｏｒ", true, ReasonNormalization},
		{"math bold letters", "𝐜𝐚𝐬𝐢𝐧𝐨", true, ReasonNormalization},
		{"normalization beats whitelist", "not judol Ⓒⓐⓢⓘⓝⓞ", true, ReasonNormalization},
		// precomposed accents are not NFKD, kept as a known false positive
		{"precomposed accent", "caf\u00e9", true, ReasonNormalization},
		{"decomposed accent", "cafe\u0301", false, ReasonNone},
	}
	m := Compile(kw)
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v := m.Explain(c.text)
			if v.Spam != c.spam || v.Reason != c.reason {
				t.Fatalf("Explain(%q) = %+v, want spam=%v reason=%q", c.text, v, c.spam, c.reason)
			}
			if IsSpam(c.text, kw) != c.spam {
				t.Fatalf("IsSpam(%q) disagrees with Explain", c.text)
			}
		})
	}
}

func TestExplain_ReportsMatchedEntries(t *testing.T) {
	v := Explain("this is not judol content", KeywordConfig{
		Blacklist: []string{"judol"},
		Whitelist: []string{"Not Judol"},
	})
	if v.Blacklisted != "judol" || v.Whitelisted != "not judol" {
		t.Fatalf("unexpected matches: %+v", v)
	}
}

func TestExplain_EmptyAndBlankLists(t *testing.T) {
	if IsSpam("judol", KeywordConfig{}) {
		t.Fatalf("empty blacklist should never flag via keywords")
	}
	// a blank entry would otherwise be contained in every text
	if IsSpam("hello world", KeywordConfig{Blacklist: []string{"", "   "}}) {
		t.Fatalf("blank blacklist entries must be ignored")
	}
	if !IsSpam("judol", KeywordConfig{Blacklist: []string{"judol"}, Whitelist: []string{""}}) {
		t.Fatalf("blank whitelist entries must not suppress a hit")
	}
	if !IsSpam("Ⓒⓐⓢⓘⓝⓞ", KeywordConfig{}) {
		t.Fatalf("stylized text is spam with empty lists")
	}
}

func TestExplain_EntriesAreNotTrimmed(t *testing.T) {
	kw := KeywordConfig{Blacklist: []string{" gacor "}}
	if IsSpam("gacorx", kw) {
		t.Fatalf("padded entry matched unpadded text")
	}
	if IsSpam("slot gacor", kw) {
		t.Fatalf("padded entry matched text without the trailing space")
	}
	if !IsSpam("slot gacor hari ini", kw) {
		t.Fatalf("padded entry should match padded text")
	}
	// whitelist entries keep their padding too, so this one does not suppress the hit
	if !IsSpam("slot gacor hari ini", KeywordConfig{Blacklist: []string{"gacor"}, Whitelist: []string{" slot gacor "}}) {
		t.Fatalf("padded whitelist entry matched text without the leading space")
	}
	if IsSpam("ada slot gacor hari ini", KeywordConfig{Blacklist: []string{"gacor"}, Whitelist: []string{" slot gacor "}}) {
		t.Fatalf("padded whitelist entry should match padded text")
	}
}

func TestExplain_GreekFinalSigma(t *testing.T) {
	// text and entries share one caser, so word-final sigma folds the same way on both sides
	if !IsSpam("ΚΑΖΙΝΟΣ", KeywordConfig{Blacklist: []string{"ΚΑΖΙΝΟΣ"}}) {
		t.Fatalf("identical Greek entry did not match")
	}
	if !IsSpam("ΝΕΟ ΚΑΖΙΝΟΣ online", KeywordConfig{Blacklist: []string{"Καζινος"}}) {
		t.Fatalf("Greek entry inside a sentence did not match")
	}
}

func TestExplain_NegativeEnclosedLetters(t *testing.T) {
	// negative circled and negative squared letters have no compatibility decomposition,
	// so this text is already NFKD and the normalization rule does not fire
	text := "FREE \U0001F152\U0001F150\U0001F182\U0001F158\U0001F15D\U0001F15E bonus"
	if !norm.NFKD.IsNormalString(text) {
		t.Fatalf("expected %q to be NFKD normal", text)
	}
	if v := Explain(text, KeywordConfig{}); v.Spam || v.Reason != ReasonNone {
		t.Fatalf("Explain(%q) = %+v, want clean", text, v)
	}
}

// the automaton must agree with naive containment
func TestNeedles_MatchesNaiveContainment(t *testing.T) {
	words := []string{"he", "she", "his", "hers", "judol", "dol", "slot88", "ot8", "a"}
	texts := []string{
		"ushers", "h", "", "xjudolx", "olsdol", "slot8", "slot888", "zzz", "bbb a", "hishe",
		"the judol", "dodol", "s", "ot88",
	}
	for k := range words {
		set := words[k:]
		n := compileNeedles(set)
		for _, txt := range texts {
			want := false
			for _, w := range set {
				if strings.Contains(txt, w) {
					want = true
					break
				}
			}
			got := n.first([]byte(txt)) != ""
			if got != want {
				t.Fatalf("needles %v on %q: got %v want %v", set, txt, got, want)
			}
		}
	}
}

func TestNeedles_FirstFoundWins(t *testing.T) {
	n := compileNeedles([]string{"gacor", "slot"})
	if got := n.first([]byte("slot gacor")); got != "slot" {
		t.Fatalf("first = %q, want slot", got)
	}
	var nilNeedles *needles
	if nilNeedles.first([]byte("x")) != "" {
		t.Fatalf("nil needles should never match")
	}
}

func TestMatcher_ConcurrentUse(t *testing.T) {
	m := Compile(KeywordConfig{Blacklist: []string{"judol"}})
	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			text := "Judol number"
			if i%2 == 1 {
				text = "clean"
			}
			if got := m.IsSpam(text); got != (i%2 == 0) {
				t.Errorf("goroutine %d: IsSpam(%q) = %v", i, text, got)
			}
		}(i)
	}
	wg.Wait()
}
