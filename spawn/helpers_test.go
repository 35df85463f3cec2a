package spawn_test

import (
	"go.uber.org/mock/gomock"

	"github.com/lixenwraith/mask-arena/spawn/mocks"
	"github.com/lixenwraith/mask-arena/vmath"
)

func mocksLocator(ctrl *gomock.Controller, positions []vmath.Vec2) *mocks.MockPlayerLocator {
	m := mocks.NewMockPlayerLocator(ctrl)
	m.EXPECT().ActivePlayers().Return(positions).AnyTimes()
	return m
}

func mocksOccupancy(ctrl *gomock.Controller, fn func(vmath.Vec2) bool) *mocks.MockOccupancy {
	m := mocks.NewMockOccupancy(ctrl)
	m.EXPECT().Occupied(gomock.Any()).DoAndReturn(fn).AnyTimes()
	return m
}
