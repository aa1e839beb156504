package components

import (
	"github.com/automoto/shadow-runner/shared/leveldata"
	"github.com/yohamta/donburi"
)

// TutorialStep is a stage of the first level walkthrough.
type TutorialStep int

const (
	TutorialMoveRight TutorialStep = iota
	TutorialMoveLeft
	TutorialJump
	TutorialGoal
	TutorialDone
)

type TutorialData struct {
	Step TutorialStep
	// GoalTimer counts down the frames the goal text stays up.
	GoalTimer int
}

var Tutorial = donburi.NewComponentType[TutorialData]()

// IntroData is the text shown when a level starts.
type IntroData struct {
	Intro *leveldata.Intro
}

var Intro = donburi.NewComponentType[IntroData]()
