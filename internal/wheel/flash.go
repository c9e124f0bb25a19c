package wheel

type flashStage int

const (
	flashSectionStage flashStage = iota
	flashCellStage
)

type flashResult int

const (
	flashContinue flashResult = iota
	flashAward
	flashDone
)

// flash blinks the winning section, then the new winners cell. Each blink
// is one lit and one dark half period of FlashSpeed milliseconds.
type flash struct {
	stage   flashStage
	tick    int
	half    int
	total   int
	section int
	cell    int
}

func newFlash(section int, s Settings, tps int) flash {
	half := s.FlashSpeed * tps / 1000
	if half < 1 {
		half = 1
	}
	return flash{
		stage:   flashSectionStage,
		half:    half,
		total:   2 * s.FlashCount * half,
		section: section,
		cell:    -1,
	}
}

func (f *flash) lit() bool {
	return (f.tick/f.half)%2 == 0
}

func (f *flash) step() flashResult {
	f.tick++
	if f.tick < f.total {
		return flashContinue
	}
	if f.stage == flashSectionStage {
		f.stage = flashCellStage
		f.tick = 0
		return flashAward
	}
	return flashDone
}
