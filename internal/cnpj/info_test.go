package cnpj

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "12.345.678/0001-95", Format("12345678000195"))
	assert.Equal(t, "12.345.678/0001-95", Format("12.345.678/0001-95"))
	assert.Equal(t, "123", Format("123"))
}

func TestParts(t *testing.T) {
	assert.Equal(t, "11222333", Root("11.222.333/0001-81"))
	assert.Equal(t, "0001", Branch("11.222.333/0001-81"))
	assert.Empty(t, Root("1122"))
	assert.Empty(t, Branch("1122"))

	assert.Equal(t, KindHeadOffice, KindOf("11222333000181"))
	assert.Equal(t, KindBranch, KindOf("11222333000262"))
	assert.Equal(t, KindUnknown, KindOf("999"))
}

func TestSameRoot(t *testing.T) {
	branch, err := Complete("112223330002")
	assert.NoError(t, err)

	assert.True(t, SameRoot("11.222.333/0001-81", branch))
	assert.False(t, SameRoot("11222333000181", "11444777000161"))
	assert.False(t, SameRoot("", ""))
}

func TestAnalyze(t *testing.T) {
	info := Analyze("11222333000181")
	assert.Equal(t, Info{
		Original:  "11222333000181",
		Cleaned:   "11222333000181",
		Formatted: "11.222.333/0001-81",
		Valid:     true,
		Reason:    ReasonNone,
		Kind:      KindHeadOffice,
		Root:      "11222333",
		Branch:    "0001",
	}, info)

	info = Analyze("11.222.333/0001-82")
	assert.False(t, info.Valid)
	assert.Equal(t, ReasonChecksum, info.Reason)
	assert.Equal(t, KindUnknown, info.Kind)
	assert.Empty(t, info.Formatted)
}

func TestExtractFromText(t *testing.T) {
	text := `Empresa 11.222.333/0001-81 e filial 11444777000161.
	Inválido 12.345.678/0001-96, repetido 11.222.333/0001-81 e 11222333000181,
	longo demais 114447770001611.`

	assert.Equal(t, []string{"11222333000181", "11444777000161"}, ExtractFromText(text))
	assert.Empty(t, ExtractFromText("nada aqui"))
}

func TestExtractFromText_DocumentOrder(t *testing.T) {
	text := "first 12345678000195 then 11.222.333/0001-81 and 11444777000161"
	assert.Equal(t, []string{"12345678000195", "11222333000181", "11444777000161"}, ExtractFromText(text))
}

func TestExtractFromText_GluedToWordCharacters(t *testing.T) {
	text := "CNPJ_12345678000195 id11222333000181x"
	assert.Equal(t, []string{"12345678000195", "11222333000181"}, ExtractFromText(text))
}

func TestExtractFromText_RejectsLongerDigitRuns(t *testing.T) {
	assert.Empty(t, ExtractFromText("911222333000181 11.222.333/0001-811 112223330001810"))
}

func TestFindAll_KeepsTextAsWritten(t *testing.T) {
	text := "11222333000181, 11.222.333/0001-81, 11.444.777/0001-61"
	assert.Equal(t, []string{"11222333000181", "11.444.777/0001-61"}, FindAll(text))
	assert.Nil(t, FindAll("nothing here"))
}
