package declarations

import "context"

// StaticSource serves a fixed set of already-extracted declarations.
// It stands in for the real extraction pipeline, which processes
// filings out-of-band and will replace this implementation behind the
// same Source interface.
type StaticSource struct {
	byID map[int]*Declaration
}

func NewStatic() StaticSource {
	return StaticSource{byID: staticDeclarations}
}

func (s StaticSource) Lookup(ctx context.Context, mpID int) (*Declaration, bool, error) {
	decl, ok := s.byID[mpID]
	if !ok {
		return nil, false, nil
	}
	return decl, true, nil
}

var staticDeclarations = map[int]*Declaration{
	241: {
		FullName:       "ANDRZEJ ADAMCZYK",
		BirthDatePlace: "15.01.1970 KRAKÓW",
		Employment:     "POSEŁ NA SEJM RP",
		PropertyRegime: "małżeńskiej wspólności majątkowej",

		CashPLN:             "125.000 PLN",
		CashForeignCurrency: "5.200 EUR, 1.800 USD",
		Securities:          "Obligacje skarbowe o wartości 50.000 PLN",

		House: &House{
			Area:       "180 m²",
			Value:      "850.000 PLN",
			LegalTitle: "MAŁŻEŃSKA WSPÓLNOŚĆ MAJĄTKOWA",
		},
		Apartments: []Apartment{
			{
				Area:       "65 m²",
				Value:      "320.000 PLN",
				LegalTitle: "50% udziału we własności",
			},
		},
		Farm: &Farm{
			Kind:      "WIELOKIERUNKOWE",
			Area:      "8,5 ha",
			Value:     "1.200.000 PLN",
			Buildings: "budynki gospodarcze",
			Revenue:   "45.000 PLN/35.000 PLN",
		},
		OtherRealEstate: "Garaż o powierzchni 25 m² o wartości 45.000 PLN",

		BusinessInterests:        "Nie dotyczy",
		PropertyFromPublicTender: "Nie dotyczy",

		OtherIncome: []IncomeSource{
			{Source: "DIETA PARLAMENTARNA", Amount: "156.240 PLN"},
			{Source: "Stosunek pracy", Amount: "85.600 PLN"},
			{Source: "Z najmu", Amount: "18.000 PLN"},
		},
		MovableProperty: []string{
			"Samochód osobowy TOYOTA COROLLA rocznik 2019",
			"Ciągnik rolniczy JOHN DEERE rocznik 2015",
			"Kolekcja monet o wartości 15.000 PLN",
		},
		Obligations: []Obligation{
			{
				Creditor: "PKO BP S.A.",
				Amount:   "245.000 PLN",
				Terms:    "kredyt hipoteczny, oprocentowanie zmienne",
			},
			{
				Creditor: "Bank Spółdzielczy",
				Amount:   "85.000 PLN",
				Terms:    "kredyt inwestycyjny na gospodarstwo",
			},
		},

		SubmittedAt: "WARSZAWA 15.04.2024",
		ProcessedAt: "2024-04-20T10:30:00Z",
	},
	242: {
		FullName:       "ANNA KOWALSKA",
		BirthDatePlace: "22.03.1975 WARSZAWA",
		Employment:     "POSEŁ NA SEJM RP",
		PropertyRegime: "odrębny",

		CashPLN:             "89.500 PLN",
		CashForeignCurrency: "Nie dotyczy",
		Securities:          "Akcje spółek giełdowych o wartości 75.000 PLN",

		Apartments: []Apartment{
			{
				Area:       "95 m²",
				Value:      "650.000 PLN",
				LegalTitle: "własność",
			},
			{
				Area:       "42 m²",
				Value:      "280.000 PLN",
				LegalTitle: "własność",
			},
		},
		OtherRealEstate: "Nie dotyczy",

		BusinessInterests:        "25% udziałów w spółce z o.o. 'Legal Consulting'",
		PropertyFromPublicTender: "Nie dotyczy",

		OtherIncome: []IncomeSource{
			{Source: "DIETA PARLAMENTARNA", Amount: "156.240 PLN"},
			{Source: "Działalność prawnicza", Amount: "125.000 PLN"},
			{Source: "Dywidendy", Amount: "12.500 PLN"},
		},
		MovableProperty: []string{
			"Samochód osobowy BMW X3 rocznik 2021",
			"Biżuteria o wartości 25.000 PLN",
		},
		Obligations: []Obligation{
			{
				Creditor: "mBank S.A.",
				Amount:   "180.000 PLN",
				Terms:    "kredyt hipoteczny, oprocentowanie stałe 4,5%",
			},
		},

		SubmittedAt: "WARSZAWA 18.04.2024",
		ProcessedAt: "2024-04-22T14:15:00Z",
	},
}
