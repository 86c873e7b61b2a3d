package integration_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

type HealthcheckTestSuite struct {
	BaseSuite
}

func TestHealthcheckSuite(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	suite.Run(t, new(HealthcheckTestSuite))
}

func (s *HealthcheckTestSuite) TestGetHealth() {
	scenario := Scenario{
		Name:           "reports the service as up",
		Method:         "GET",
		URL:            "/healthcheck",
		ExpectedStatus: http.StatusOK,
		ExpectedResponse: `{
			"status": "UP",
			"systemInfo": {
				"environment": "test"
			}
		}`,
	}

	scenario.Run(s.T(), s.app)
}
