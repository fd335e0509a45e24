package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rxtech-lab/auction-viewer/internal/config"
	"github.com/rxtech-lab/auction-viewer/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	testContractAddress = "0x6AE072C00BFB6c87d344969E2446DEc830104510"
	testABI             = `[{"name":"showWinner","type":"function"}]`
)

type stubAuctionService struct {
	result models.ContractQueryResult
	calls  int
}

func (s *stubAuctionService) Fetch(ctx context.Context) models.ContractQueryResult {
	s.calls++
	return s.result
}

func (s *stubAuctionService) InterfaceDescription() string {
	return testABI
}

func (s *stubAuctionService) ContractAddress() common.Address {
	return common.HexToAddress(testContractAddress)
}

func testConfig() *config.Config {
	return &config.Config{
		RPCURL:          "http://localhost:8545",
		ContractAddress: testContractAddress,
		SecretKey:       "test-secret",
		ExplorerURL:     "https://sepolia.etherscan.io",
	}
}

func healthyResult() models.ContractQueryResult {
	return models.ContractQueryResult{
		WinnerAddress: "0x000000000000000000000000000000000000aBc1",
		WinningAmount: decimal.NewFromInt(2),
		Offers: []models.Offer{
			{BidderAddress: "0x000000000000000000000000000000000000aAa1", Amount: decimal.RequireFromString("0.5")},
			{BidderAddress: "0x000000000000000000000000000000000000bBb1", Amount: decimal.NewFromInt(2)},
		},
	}
}

func getIndex(t *testing.T, server *APIServer) (*http.Response, string) {
	t.Helper()
	resp, err := server.GetFiberApp().Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, string(body)
}

func TestHandleIndexPage_Healthy(t *testing.T) {
	service := &stubAuctionService{result: healthyResult()}
	server, err := NewAPIServer(testConfig(), service)
	require.NoError(t, err)

	resp, body := getIndex(t, server)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Equal(t, 1, service.calls)

	assert.Contains(t, body, testContractAddress)
	assert.Contains(t, body, "https://sepolia.etherscan.io/address/"+testContractAddress)
	assert.Contains(t, body, "0x000000000000000000000000000000000000aBc1")
	assert.Contains(t, body, `<div id="winningAmount">2 ETH</div>`)
	assert.Contains(t, body, `<div id="minNextBid">2.1 ETH</div>`)
	assert.Contains(t, body, "Offers (2)")
	assert.Contains(t, body, "0.5 ETH")
	assert.Contains(t, body, "0x0000...aAa1")
	assert.Contains(t, body, "showWinner")
	assert.NotContains(t, body, "Could not read the contract")
}

func TestHandleIndexPage_OffersKeepOrder(t *testing.T) {
	service := &stubAuctionService{result: healthyResult()}
	server, err := NewAPIServer(testConfig(), service)
	require.NoError(t, err)

	_, body := getIndex(t, server)

	first := strings.Index(body, "0x000000000000000000000000000000000000aAa1")
	second := strings.Index(body, "0x000000000000000000000000000000000000bBb1")
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, second)
	assert.Less(t, first, second)
}

func TestHandleIndexPage_FetchFailureStillRenders(t *testing.T) {
	service := &stubAuctionService{result: models.FallbackResult(errors.New("not connected: connection refused"))}
	server, err := NewAPIServer(testConfig(), service)
	require.NoError(t, err)

	resp, body := getIndex(t, server)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, testContractAddress)
	assert.Contains(t, body, "Could not read the contract")
	assert.Contains(t, body, "not connected: connection refused")
	assert.Contains(t, body, `<div class="mono" id="winnerAddress">Error</div>`)
	assert.Contains(t, body, `<div id="winningAmount">0 ETH</div>`)
	assert.Contains(t, body, "No offers yet.")
}

func TestHandleIndexPage_NoExplorer(t *testing.T) {
	cfg := testConfig()
	cfg.ExplorerURL = ""
	server, err := NewAPIServer(cfg, &stubAuctionService{result: healthyResult()})
	require.NoError(t, err)

	resp, body := getIndex(t, server)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, testContractAddress)
	assert.NotContains(t, body, "etherscan")
}

func TestUnknownRoutesAreNotServed(t *testing.T) {
	server, err := NewAPIServer(testConfig(), &stubAuctionService{result: healthyResult()})
	require.NoError(t, err)

	for _, path := range []string{"/api/auction", "/health", "/static/app.js"} {
		resp, err := server.GetFiberApp().Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, path)
	}
}

func TestTemplateHelpers(t *testing.T) {
	assert.Equal(t, "0x6AE0...4510", shortAddress(testContractAddress))
	assert.Equal(t, "Error", shortAddress("Error"))
	assert.Equal(t, "1.234568", formatEther(decimal.RequireFromString("1.23456789")))
	assert.Equal(t, "0", formatEther(decimal.Zero))
	assert.Equal(t, "0.000001", formatEther(decimal.RequireFromString("0.000001")))
}

// PageServerTestSuite runs the page server on a real port
type PageServerTestSuite struct {
	suite.Suite
	apiServer *APIServer
	service   *stubAuctionService
	port      int
}

func (suite *PageServerTestSuite) SetupSuite() {
	suite.service = &stubAuctionService{result: healthyResult()}
	apiServer, err := NewAPIServer(testConfig(), suite.service)
	suite.Require().NoError(err)

	port, err := apiServer.Start(nil) // Let it find an available port
	suite.Require().NoError(err)
	suite.Require().NotZero(port)
	suite.apiServer = apiServer
	suite.port = port

	// Wait for server to be ready
	time.Sleep(100 * time.Millisecond)
}

func (suite *PageServerTestSuite) TearDownSuite() {
	if suite.apiServer != nil {
		suite.apiServer.Shutdown()
	}
}

func (suite *PageServerTestSuite) TestIndexOverHTTP() {
	client := &http.Client{Timeout: 10 * time.Second}

	resp, err := client.Get(fmt.Sprintf("http://localhost:%d/", suite.port))
	suite.Require().NoError(err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	suite.Require().NoError(err)

	suite.Equal(http.StatusOK, resp.StatusCode)
	suite.Contains(string(body), testContractAddress)
	suite.Equal(suite.port, suite.apiServer.GetPort())
}

func TestPageServerTestSuite(t *testing.T) {
	suite.Run(t, new(PageServerTestSuite))
}
