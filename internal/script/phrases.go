package script

// Exchange is a scripted main-host line followed by the expert's reply.
type Exchange struct {
	Main   string
	Expert string
}

// Closing is the fixed sign-off sequence.
type Closing struct {
	Question string
	Answer   string
	SignOff  string
}

// LanguagePack holds every phrase pool for one language. Templates use the
// placeholders {show}, {category}, {bunch}, {host}, {expert}, {hottake} and
// {title}. {category} is the spoken name ("ai tech"), {bunch} the raw key.
type LanguagePack struct {
	MainHost        string
	DefaultExpert   string
	Experts         map[string]string
	Intros          []string
	Transitions     []string
	HotTakes        map[string][]string
	GenericHotTakes []string
	StoryPrompt     string
	Fillers         []string
	Banter          []Exchange
	Closing         Closing
}

// DefaultPacks are the built-in English and German phrase pools.
var DefaultPacks = map[string]LanguagePack{
	"en": {
		MainHost:      "Alex",
		DefaultExpert: "Dr. Sarah",
		Experts: map[string]string{
			"ai-tech":          "Dr. Sarah Chen",
			"finance-business": "Marcus Webb",
			"science":          "Dr. Elena Rodriguez",
			"health":           "Dr. James Patel",
			"politics":         "Dr. Rachel Morgan",
		},
		Intros: []string{
			"Welcome to {show} Daily! I'm {host}, and joining me as always is {expert}.",
			"Good morning and welcome to {show} Daily. I'm {host}, here with {expert}.",
			"Hey everyone, this is {host} with {show} Daily, and {expert} is back in the studio.",
		},
		Transitions: []string{
			"Let's dive into today's top stories.",
			"We've got a packed lineup today, so let's get right into it.",
			"There's a lot to unpack, so let's jump in.",
		},
		HotTakes: map[string][]string{
			"ai-tech": {
				"Okay, the robots are at it again.",
				"Another day, another AI announcement.",
				"Silicon Valley never sleeps, and neither does this story.",
			},
			"finance-business": {
				"Grab your wallets, folks.",
				"The markets have opinions today.",
				"Somebody call the accountants.",
			},
			"science": {
				"Put on your lab goggles for this one.",
				"Science just dropped something big.",
				"This one made me want to go back to school.",
			},
			"health": {
				"Here's one for your next check-up.",
				"Your doctor will probably ask about this.",
				"Health news you can actually use.",
			},
			"politics": {
				"Buckle up, it's politics time.",
				"The corridors of power are busy today.",
				"Here's what has everyone in the capital talking.",
			},
		},
		GenericHotTakes: []string{
			"Here's one that caught my eye.",
			"This next one is worth your attention.",
		},
		StoryPrompt: `{hottake} Our next story: "{title}". {expert}, what's your take?`,
		Fillers: []string{
			"This is particularly interesting because it shows how rapidly this field is evolving. The implications for businesses and consumers could be significant.",
			"What stands out to me is how quickly this moved from an idea to something real.",
			"The bigger picture here is that the usual rules are being rewritten.",
			"I'd keep an eye on the second-order effects, because that's where the real story usually is.",
		},
		Banter: []Exchange{
			{
				Main:   "Fascinating. What should people be watching for next?",
				Expert: "The key thing to monitor is how this develops over the coming weeks. This could set important precedents.",
			},
			{
				Main:   "So, overhyped or underhyped?",
				Expert: "Honestly? A little of both, which is exactly why it's worth watching.",
			},
			{
				Main:   "I did not have that on my bingo card this week.",
				Expert: "Nobody did, and that's what makes it a story.",
			},
		},
		Closing: Closing{
			Question: "Great insights. Any final thoughts for our listeners?",
			Answer:   "I'd say keep an eye on this space. These developments are happening fast, and they'll likely impact how we work and live.",
			SignOff:  "Excellent. That's your {bunch} update for today. Thanks for listening, and we'll see you tomorrow!",
		},
	},
	"de": {
		MainHost:      "Michael",
		DefaultExpert: "Dr. Schmidt",
		Experts: map[string]string{
			"ai-tech":          "Dr. Schmidt",
			"finance-business": "Dr. Katrin Weber",
			"science":          "Prof. Lukas Hoffmann",
			"health":           "Dr. Anna Becker",
			"politics":         "Dr. Thomas Richter",
		},
		Intros: []string{
			"Willkommen zu {show} Daily! Ich bin {host}, und bei mir ist wie immer {expert}.",
			"Guten Morgen und herzlich willkommen bei {show} Daily. Ich bin {host}, heute mit {expert}.",
			"Hallo zusammen, hier ist {host} mit {show} Daily, und {expert} ist wieder dabei.",
		},
		Transitions: []string{
			"Schauen wir uns die wichtigsten Nachrichten von heute an.",
			"Wir haben heute einiges vor, also legen wir direkt los.",
			"Es gibt viel zu besprechen, also fangen wir an.",
		},
		HotTakes: map[string][]string{
			"ai-tech": {
				"Die Roboter sind wieder unterwegs.",
				"Noch eine KI-Ankündigung, wer hätte das gedacht.",
				"Das Silicon Valley schläft nie.",
			},
			"finance-business": {
				"Halten Sie Ihre Geldbörsen fest.",
				"Die Märkte haben heute einiges zu sagen.",
				"Da werden die Buchhalter hellhörig.",
			},
			"science": {
				"Schutzbrille auf für diese Geschichte.",
				"Die Wissenschaft hat wieder zugeschlagen.",
				"Da möchte man glatt wieder studieren.",
			},
			"health": {
				"Das ist etwas für Ihren nächsten Arztbesuch.",
				"Ihre Ärztin wird Sie bestimmt darauf ansprechen.",
				"Gesundheitsnews, die wirklich nützen.",
			},
			"politics": {
				"Anschnallen, es wird politisch.",
				"In den Fluren der Macht ist heute viel los.",
				"Darüber spricht heute die ganze Hauptstadt.",
			},
		},
		GenericHotTakes: []string{
			"Diese Meldung ist mir aufgefallen.",
			"Die nächste Geschichte verdient Aufmerksamkeit.",
		},
		StoryPrompt: `{hottake} Unsere nächste Meldung: "{title}". {expert}, was meinen Sie dazu?`,
		Fillers: []string{
			"Das ist besonders interessant, weil es zeigt, wie schnell sich dieses Feld entwickelt. Die Auswirkungen für Unternehmen und Verbraucher könnten erheblich sein.",
			"Mich überrascht vor allem, wie schnell aus einer Idee Realität geworden ist.",
			"Im größeren Zusammenhang sieht man, dass gerade die üblichen Regeln neu geschrieben werden.",
			"Ich würde auf die Folgeeffekte achten, denn dort liegt meist die eigentliche Geschichte.",
		},
		Banter: []Exchange{
			{
				Main:   "Faszinierend. Worauf sollten die Leute als nächstes achten?",
				Expert: "Das Wichtigste ist zu beobachten, wie sich das in den kommenden Wochen entwickelt. Das könnte wichtige Präzedenzfälle schaffen.",
			},
			{
				Main:   "Also, überbewertet oder unterschätzt?",
				Expert: "Ehrlich gesagt ein bisschen von beidem, und genau deshalb lohnt es sich, dranzubleiben.",
			},
			{
				Main:   "Damit hätte ich diese Woche nicht gerechnet.",
				Expert: "Niemand hat das, und genau das macht es zur Nachricht.",
			},
		},
		Closing: Closing{
			Question: "Großartige Einblicke. Haben Sie abschließende Gedanken für unsere Hörer?",
			Answer:   "Ich würde sagen, behalten Sie diesen Bereich im Auge. Diese Entwicklungen passieren schnell und werden wahrscheinlich beeinflussen, wie wir arbeiten und leben.",
			SignOff:  "Ausgezeichnet. Das war Ihr {bunch} Update für heute. Danke fürs Zuhören, wir sehen uns morgen!",
		},
	},
}
