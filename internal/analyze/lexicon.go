package analyze

// valence maps sentiment-bearing words to a polarity in [-1, 1].
// The list targets news prose: evaluative adjectives, outcome verbs,
// and the loaded nouns that dominate headline vocabulary.
var valence = map[string]float64{
	// strongly positive
	"excellent":     1.0,
	"outstanding":   1.0,
	"superb":        1.0,
	"wonderful":     1.0,
	"amazing":       0.9,
	"fantastic":     0.9,
	"brilliant":     0.9,
	"perfect":       0.9,
	"breakthrough":  0.8,
	"triumph":       0.8,
	"thrilled":      0.8,
	"delighted":     0.8,
	"great":         0.8,
	"love":          0.7,
	"win":           0.6,
	"wins":          0.6,
	"won":           0.6,
	"success":       0.7,
	"successful":    0.7,
	"victory":       0.7,
	"record":        0.3,
	"strong":        0.5,
	"stronger":      0.5,
	"good":          0.7,
	"best":          0.8,
	"better":        0.5,
	"positive":      0.6,
	"optimistic":    0.6,
	"promising":     0.6,
	"boost":         0.5,
	"boosts":        0.5,
	"gain":          0.4,
	"gains":         0.4,
	"growth":        0.4,
	"improve":       0.5,
	"improved":      0.5,
	"improvement":   0.5,
	"recovery":      0.4,
	"rally":         0.4,
	"surge":         0.3,
	"soar":          0.4,
	"soars":         0.4,
	"praise":        0.5,
	"praised":       0.5,
	"celebrate":     0.6,
	"celebrated":    0.6,
	"hope":          0.4,
	"hopeful":       0.5,
	"safe":          0.4,
	"safely":        0.4,
	"benefit":       0.4,
	"benefits":      0.4,
	"support":       0.3,
	"agreement":     0.3,
	"peace":         0.5,
	"stable":        0.3,
	"happy":         0.7,
	"glad":          0.5,
	"proud":         0.5,
	"innovative":    0.5,
	"thriving":      0.6,
	"progress":      0.4,
	"popular":       0.4,
	"award":         0.4,
	"awarded":       0.4,
	"approve":       0.3,
	"approved":      0.3,
	"relief":        0.3,
	"encouraging":   0.5,
	"remarkable":    0.6,
	"historic":      0.3,
	"landmark":      0.3,
	"generous":      0.5,
	"impressive":    0.6,

	// strongly negative
	"terrible":      -1.0,
	"horrible":      -1.0,
	"awful":         -1.0,
	"catastrophic":  -1.0,
	"disastrous":    -0.9,
	"devastating":   -0.9,
	"tragic":        -0.9,
	"tragedy":       -0.9,
	"horrific":      -0.9,
	"worst":         -0.8,
	"bad":           -0.7,
	"hate":          -0.8,
	"crisis":        -0.6,
	"disaster":      -0.7,
	"catastrophe":   -0.8,
	"collapse":      -0.6,
	"collapsed":     -0.6,
	"crash":         -0.6,
	"crashes":       -0.6,
	"plunge":        -0.5,
	"plunges":       -0.5,
	"slump":         -0.5,
	"decline":       -0.4,
	"declines":      -0.4,
	"loss":          -0.5,
	"losses":        -0.5,
	"lose":          -0.5,
	"lost":          -0.4,
	"fail":          -0.6,
	"fails":         -0.6,
	"failed":        -0.6,
	"failure":       -0.6,
	"fear":          -0.5,
	"fears":         -0.5,
	"threat":        -0.5,
	"threats":       -0.5,
	"threaten":      -0.5,
	"threatened":    -0.5,
	"warning":       -0.3,
	"warn":          -0.3,
	"warns":         -0.3,
	"risk":          -0.3,
	"risks":         -0.3,
	"danger":        -0.6,
	"dangerous":     -0.6,
	"deadly":        -0.8,
	"death":         -0.6,
	"deaths":        -0.6,
	"killed":        -0.7,
	"kill":          -0.7,
	"attack":        -0.6,
	"attacks":       -0.6,
	"war":           -0.6,
	"conflict":      -0.4,
	"violence":      -0.6,
	"violent":       -0.6,
	"fraud":         -0.7,
	"scandal":       -0.6,
	"corruption":    -0.6,
	"corrupt":       -0.6,
	"illegal":       -0.5,
	"crime":         -0.5,
	"criminal":      -0.5,
	"guilty":        -0.5,
	"lawsuit":       -0.3,
	"ban":           -0.3,
	"banned":        -0.3,
	"cut":           -0.2,
	"cuts":          -0.2,
	"layoff":        -0.5,
	"layoffs":       -0.5,
	"recession":     -0.5,
	"inflation":     -0.3,
	"debt":          -0.3,
	"weak":          -0.4,
	"weaker":        -0.4,
	"poor":          -0.5,
	"worse":         -0.5,
	"negative":      -0.5,
	"angry":         -0.6,
	"anger":         -0.5,
	"outrage":       -0.6,
	"protest":       -0.3,
	"protests":      -0.3,
	"chaos":         -0.6,
	"panic":         -0.6,
	"concern":       -0.3,
	"concerns":      -0.3,
	"concerned":     -0.3,
	"worried":       -0.4,
	"worry":         -0.4,
	"trouble":       -0.4,
	"troubled":      -0.4,
	"problem":       -0.3,
	"problems":      -0.3,
	"damage":        -0.4,
	"damaged":       -0.4,
	"destroy":       -0.7,
	"destroyed":     -0.7,
	"injured":       -0.5,
	"injuries":      -0.5,
	"victim":        -0.4,
	"victims":       -0.4,
	"emergency":     -0.4,
	"shortage":      -0.4,
	"delay":         -0.2,
	"delayed":       -0.2,
	"dispute":       -0.3,
	"reject":        -0.3,
	"rejected":      -0.3,
	"blame":         -0.4,
	"blamed":        -0.4,
	"accuse":        -0.4,
	"accused":       -0.4,
	"controversial": -0.3,
	"sad":           -0.5,
	"grim":          -0.6,
	"bleak":         -0.6,
	"uncertain":     -0.3,
	"uncertainty":   -0.3,
	"volatile":      -0.3,
	"struggle":      -0.4,
	"struggling":    -0.4,
	"suffer":        -0.5,
	"suffering":     -0.5,
}

// negators flip and dampen the polarity of the following sentiment word.
var negators = map[string]struct{}{
	"not":     {},
	"no":      {},
	"never":   {},
	"neither": {},
	"nobody":  {},
	"nothing": {},
	"hardly":  {},
	"barely":  {},
	"n't":     {},
	"don't":   {},
	"won't":   {},
	"can't":   {},
	"isn't":   {},
	"wasn't":  {},
	"aren't":  {},
	"didn't":  {},
	"doesn't": {},
}

// intensifiers scale the polarity of the following sentiment word.
var intensifiers = map[string]float64{
	"very":       1.3,
	"really":     1.25,
	"extremely":  1.5,
	"incredibly": 1.4,
	"highly":     1.25,
	"deeply":     1.3,
	"hugely":     1.4,
	"slightly":   0.7,
	"somewhat":   0.8,
	"fairly":     0.85,
	"quite":      1.1,
}
