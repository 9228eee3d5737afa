// Package declarations resolves financial disclosure documents for
// members of parliament. Declarations are extracted out-of-band from
// scanned PDF filings; absence of a declaration for a given MP is a
// normal, expected outcome rather than an error.
package declarations

import "context"

// House is a single real-estate holding of the house kind.
type House struct {
	Area       string `json:"powierzchnia"`
	Value      string `json:"wartosc"`
	LegalTitle string `json:"tytul_prawny"`
}

// Apartment is one of zero or more apartment holdings.
type Apartment struct {
	Area       string `json:"powierzchnia"`
	Value      string `json:"wartosc"`
	LegalTitle string `json:"tytul_prawny"`
}

// Farm is an optional agricultural holding.
type Farm struct {
	Kind      string `json:"rodzaj"`
	Area      string `json:"powierzchnia"`
	Value     string `json:"wartosc"`
	Buildings string `json:"zabudowa"`
	Revenue   string `json:"przychod_dochod"`
}

// IncomeSource is one entry of the other-income section.
type IncomeSource struct {
	Source string `json:"zrodlo"`
	Amount string `json:"kwota"`
}

// Obligation is a monetary liability (credits, loans).
type Obligation struct {
	Creditor string `json:"wierzyciel"`
	Amount   string `json:"kwota"`
	Terms    string `json:"warunki"`
}

// Declaration is a normalized financial disclosure document. The json
// tags follow the field names of the upstream extraction pipeline.
type Declaration struct {
	FullName       string `json:"imiona_i_nazwisko"`
	BirthDatePlace string `json:"data_i_miejsce_urodzenia"`
	Employment     string `json:"miejsce_zatrudnienia_stanowisko_lub_funkcja"`
	PropertyRegime string `json:"ustroj_majatkowy"`

	CashPLN             string `json:"srodki_pieniezne_pln"`
	CashForeignCurrency string `json:"srodki_pieniezne_waluta_obca"`
	Securities          string `json:"papiery_wartosciowe"`

	House           *House      `json:"dom,omitempty"`
	Apartments      []Apartment `json:"mieszkanie,omitempty"`
	Farm            *Farm       `json:"gospodarstwo_rolne,omitempty"`
	OtherRealEstate string      `json:"inne_nieruchomosci"`

	BusinessInterests        string `json:"dzialalnosc_gospodarcza_i_udzialy_w_spolkach"`
	PropertyFromPublicTender string `json:"mienie_nabyte_w_drodze_przetargu"`

	OtherIncome     []IncomeSource `json:"inne_dochody"`
	MovableProperty []string       `json:"mienie_ruchome"`
	Obligations     []Obligation   `json:"zobowiazania_pieniezne"`

	SubmittedAt string `json:"miejsce_i_data_zlozenia"`
	ProcessedAt string `json:"data_przetworzenia"`
}

// Source resolves the declaration for one MP id. The second return
// value reports whether a declaration exists; a (nil, false, nil)
// result is the normal outcome for an MP with no processed filing.
type Source interface {
	Lookup(ctx context.Context, mpID int) (*Declaration, bool, error)
}
