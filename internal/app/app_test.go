package app

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ApplicationSuite struct {
	suite.Suite
	app *Application
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New()
}

func (s *ApplicationSuite) TestNew() {
	s.Require().NotNil(s.app)
	s.NotNil(s.app.errCh)
	s.False(s.app.ready)
}

func (s *ApplicationSuite) TestWait() {
	ctx, cancel := context.WithCancel(context.Background())

	s.app.errCh = make(chan error)
	go func() {
		s.app.errCh <- fmt.Errorf("mock error")
	}()

	err := s.app.Wait(ctx, cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "mock error")
}
