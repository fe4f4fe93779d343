package facades

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlagFacade_URL(t *testing.T) {
	facade := NewFlagFacade("https://flagcdn.com")

	assert.Equal(t, "https://flagcdn.com/w320/br.png", facade.URL("BR", "w320"))
	assert.Equal(t, "https://flagcdn.com/w40/pt.png", facade.URL("pt", "w40"))
}

func TestFlagFacade_URLs(t *testing.T) {
	facade := NewFlagFacade("https://flagcdn.com")

	urls := facade.URLs("BR")
	assert.Equal(t, "https://flagcdn.com/w40/br.png", urls.Small)
	assert.Equal(t, "https://flagcdn.com/w160/br.png", urls.Medium)
	assert.Equal(t, "https://flagcdn.com/w320/br.png", urls.Large)
	assert.Equal(t, "https://flagcdn.com/w640/br.png", urls.XLarge)
	assert.Equal(t, "https://flagcdn.com/br.svg", urls.SVG)
}
