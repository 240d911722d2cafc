package linesheet

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	entries := []Entry{
		{Name: "Tail Climber", URL: "http://localhost/shoe/tail-climber", Price: "$165.00", SalePrice: "$99.00", ColorLabel: "2 Colors", Badge: "Sale"},
		{Name: "Cosmic Runner", URL: "http://localhost/shoe/cosmic-runner", Price: "$120.00", ColorLabel: "1 Color", Badge: "Just Released"},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "Sole Shop Line Sheet", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), entries))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Greater(t, buf.Len(), 500)
}

func TestWrite_ManyPages(t *testing.T) {
	entries := make([]Entry, 0, 120)
	for i := 0; i < 120; i++ {
		entries = append(entries, Entry{Name: fmt.Sprintf("Shoe %d", i), Price: "$10.00", ColorLabel: "1 Color"})
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "Catalog", time.Now(), entries))
	m := regexp.MustCompile(`/Count (\d+)`).FindStringSubmatch(buf.String())
	require.Len(t, m, 2)
	pages, err := strconv.Atoi(m[1])
	require.NoError(t, err)
	assert.Greater(t, pages, 3)
}

func TestWrite_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "Catalog", time.Now(), nil))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}
