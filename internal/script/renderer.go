package script

import (
	"math/rand/v2"
	"strings"
	"sync"

	"PodcastDaily/internal/domain"
	"PodcastDaily/internal/ports"
)

const fallbackLanguage = "en"

// unseededRand draws from the process-wide math/rand/v2 source, which is
// safe for concurrent use.
type unseededRand struct{}

func (unseededRand) IntN(n int) int { return rand.IntN(n) }

// lockedRand serializes draws from an injected source such as *rand.Rand,
// which is not safe for concurrent use.
type lockedRand struct {
	mu  sync.Mutex
	src ports.RandomSource
}

func (l *lockedRand) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.IntN(n)
}

// Renderer assembles dialogue transcripts from phrase pools.
type Renderer struct {
	packs map[string]LanguagePack
	rnd   ports.RandomSource
}

var _ ports.ScriptRenderer = (*Renderer)(nil)

// NewRenderer uses DefaultPacks when packs is nil and the global random
// source when rnd is nil. Output is not reproducible unless a deterministic
// rnd is supplied. An injected rnd is wrapped so one Renderer can serve
// concurrent requests.
func NewRenderer(packs map[string]LanguagePack, rnd ports.RandomSource) *Renderer {
	if packs == nil {
		packs = DefaultPacks
	}
	if rnd == nil {
		rnd = unseededRand{}
	} else {
		rnd = &lockedRand{src: rnd}
	}
	return &Renderer{packs: packs, rnd: rnd}
}

// Hosts reports the persona pair used for a category/language.
func (r *Renderer) Hosts(category, language string) domain.Hosts {
	pack := r.pack(language)
	return domain.Hosts{Main: pack.MainHost, Expert: pack.expert(category)}
}

// Render produces newline-delimited "<Host>: <text>" turns separated by
// blank lines.
func (r *Renderer) Render(articles []domain.Article, category, language string) string {
	pack := r.pack(language)
	main := pack.MainHost
	expert := pack.expert(category)

	fill := func(tmpl string, extra ...string) string {
		pairs := append([]string{
			"{show}", domain.DisplayName(category),
			"{category}", domain.SpokenName(category),
			"{bunch}", category,
			"{host}", main,
			"{expert}", expert,
		}, extra...)
		return strings.NewReplacer(pairs...).Replace(tmpl)
	}

	var b strings.Builder
	turn := func(speaker, text string) {
		b.WriteString(speaker)
		b.WriteString(": ")
		b.WriteString(strings.TrimSpace(text))
		b.WriteString("\n\n")
	}

	turn(main, fill(r.pick(pack.Intros))+" "+r.pick(pack.Transitions))

	hotTakes := pack.HotTakes[category]
	if len(hotTakes) == 0 {
		hotTakes = pack.GenericHotTakes
	}

	for i, article := range articles {
		turn(main, fill(pack.StoryPrompt, "{hottake}", r.pick(hotTakes), "{title}", article.Title))
		turn(expert, article.Description+" "+r.pick(pack.Fillers))

		if i < len(articles)-1 && len(pack.Banter) > 0 {
			exchange := pack.Banter[r.rnd.IntN(len(pack.Banter))]
			turn(main, exchange.Main)
			turn(expert, exchange.Expert)
		}
	}

	turn(main, pack.Closing.Question)
	turn(expert, pack.Closing.Answer)
	turn(main, fill(pack.Closing.SignOff))

	return strings.TrimRight(b.String(), "\n")
}

func (r *Renderer) pack(language string) LanguagePack {
	if pack, ok := r.packs[language]; ok {
		return pack
	}
	return r.packs[fallbackLanguage]
}

func (r *Renderer) pick(pool []string) string {
	if len(pool) == 0 {
		return ""
	}
	return pool[r.rnd.IntN(len(pool))]
}

func (p LanguagePack) expert(category string) string {
	if name, ok := p.Experts[category]; ok && name != "" {
		return name
	}
	return p.DefaultExpert
}
