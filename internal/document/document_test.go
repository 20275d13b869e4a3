package document

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shipsched/internal/domain"
)

func TestAliasesFor(t *testing.T) {
	assert.Equal(t, []string{"LOS ANGELES", "LA", "L.A."}, AliasesFor("Los Angeles"))
	assert.Equal(t, AliasesFor("Los Angeles"), AliasesFor("los angeles"))
	assert.Equal(t, []string{"LONG BEACH"}, AliasesFor("Long Beach"))
	assert.Nil(t, AliasesFor("  "))
}

func TestSelectCandidates_Window(t *testing.T) {
	lines := []string{
		"HEADER",
		"VESSEL X  V.123",
		"TOKYO 05/02",
		"LOS ANGELES 05/15",
		"NOTE A",
		"NOTE B",
		"FOOTER",
	}
	got := SelectCandidates(lines, AliasesFor("Los Angeles"), 0)
	assert.Equal(t, "VESSEL X  V.123\nTOKYO 05/02\nLOS ANGELES 05/15\nNOTE A\nNOTE B", got)
}

func TestSelectCandidates_DeduplicatesAndKeepsOrder(t *testing.T) {
	lines := []string{"A", "NYC 01/02", "B", "A", "NY 01/09", "C"}
	got := SelectCandidates(lines, AliasesFor("New York"), 0)
	assert.Equal(t, "A\nNYC 01/02\nB\nNY 01/09\nC", got)
}

func TestSelectCandidates_RequiresDateAndAlias(t *testing.T) {
	lines := []string{"ROTTERDAM", "HAMBURG 03/04", "01/02 ONLY DATE"}
	assert.Empty(t, SelectCandidates(lines, AliasesFor("Rotterdam"), 0))
}

func TestSelectCandidates_Budget(t *testing.T) {
	lines := []string{"HAMBURG 03/04 " + strings.Repeat("x", 100)}
	got := SelectCandidates(lines, AliasesFor("Hamburg"), 10)
	assert.Equal(t, "HAMBURG 03", got)

	jp := []string{"上海 03/04 本船"}
	assert.Equal(t, "上海 03", SelectCandidates(jp, AliasesFor("上海"), 5))
}

func TestFetcher_SavesUniqueFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("%PDF-1.4 test"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	f := NewFetcher(dir, time.Second)

	p1, clean1, err := f.Fetch(context.Background(), srv.URL+"/a.pdf")
	require.NoError(t, err)
	p2, clean2, err := f.Fetch(context.Background(), srv.URL+"/a.pdf")
	require.NoError(t, err)

	assert.NotEqual(t, p1, p2)
	assert.Equal(t, dir, filepath.Dir(p1))
	data, err := os.ReadFile(p1)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 test", string(data))

	clean1()
	clean2()
	_, err = os.Stat(p1)
	assert.True(t, os.IsNotExist(err))
}

func TestFetcher_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, cleanup, err := NewFetcher(t.TempDir(), time.Second).Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	cleanup()

	var fe domain.FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, http.StatusNotFound, fe.StatusCode)
	assert.Equal(t, "FetchFailure", domain.FailureKind(err))
}

func TestPDFText_Unreadable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not a pdf"), 0o644))

	_, err := PDFText{}.Lines(path)
	var ee domain.ExtractionError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, domain.ExtractionUnreadable, ee.Kind)
}
