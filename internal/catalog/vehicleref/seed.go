package vehicleref

const seedVersion = "2025-07"

func yr(y int) *int { return &y }

// seedMakes is a trimmed snapshot of the licensed vehicle reference feed,
// enough to cover the Belgian used-car long tail during development.
func seedMakes() map[string][]Model {
	return map[string][]Model{
		"Toyota": {
			{Name: "Corolla", YearStart: 2000, YearEnd: yr(2013), BodyType: "hatchback", Country: "JP"},
			{Name: "Corolla Cross", YearStart: 2020, BodyType: "suv", Country: "JP"},
			{Name: "Yaris", YearStart: 1999, BodyType: "hatchback", Country: "JP"},
			{Name: "RAV4", YearStart: 1994, BodyType: "suv", Country: "JP"},
			{Name: "Aygo", YearStart: 2005, YearEnd: yr(2022), BodyType: "hatchback", Country: "JP"},
			{Name: "C-HR", YearStart: 2016, BodyType: "suv", Country: "JP"},
		},
		"Volkswagen": {
			{Name: "Golf", YearStart: 1974, BodyType: "hatchback", Country: "DE"},
			{Name: "Polo", YearStart: 1975, BodyType: "hatchback", Country: "DE"},
			{Name: "Passat", YearStart: 1973, BodyType: "sedan", Country: "DE"},
			{Name: "Tiguan", YearStart: 2007, BodyType: "suv", Country: "DE"},
			{Name: "ID.3", YearStart: 2019, BodyType: "hatchback", Country: "DE"},
			{Name: "Transporter", YearStart: 1990, BodyType: "van", Country: "DE"},
		},
		"BMW": {
			{Name: "1 Series", YearStart: 2004, BodyType: "hatchback", Country: "DE"},
			{Name: "3 Series", YearStart: 1975, BodyType: "sedan", Country: "DE"},
			{Name: "5 Series", YearStart: 1972, BodyType: "sedan", Country: "DE"},
			{Name: "X1", YearStart: 2009, BodyType: "suv", Country: "DE"},
			{Name: "X3", YearStart: 2003, BodyType: "suv", Country: "DE"},
			{Name: "i3", YearStart: 2013, YearEnd: yr(2022), BodyType: "hatchback", Country: "DE"},
		},
		"Mercedes-Benz": {
			{Name: "A-Class", YearStart: 1997, BodyType: "hatchback", Country: "DE"},
			{Name: "C-Class", YearStart: 1993, BodyType: "sedan", Country: "DE"},
			{Name: "E-Class", YearStart: 1993, BodyType: "sedan", Country: "DE"},
			{Name: "GLA", YearStart: 2013, BodyType: "suv", Country: "DE"},
			{Name: "Sprinter", YearStart: 1995, BodyType: "van", Country: "DE"},
		},
		"Audi": {
			{Name: "A1", YearStart: 2010, BodyType: "hatchback", Country: "DE"},
			{Name: "A3", YearStart: 1996, BodyType: "hatchback", Country: "DE"},
			{Name: "A4", YearStart: 1994, BodyType: "sedan", Country: "DE"},
			{Name: "Q3", YearStart: 2011, BodyType: "suv", Country: "DE"},
			{Name: "Q5", YearStart: 2008, BodyType: "suv", Country: "DE"},
		},
		"Renault": {
			{Name: "Clio", YearStart: 1990, BodyType: "hatchback", Country: "FR"},
			{Name: "Megane", YearStart: 1995, BodyType: "hatchback", Country: "FR"},
			{Name: "Captur", YearStart: 2013, BodyType: "suv", Country: "FR"},
			{Name: "Scenic", YearStart: 1996, YearEnd: yr(2023), BodyType: "mpv", Country: "FR"},
			{Name: "Kangoo", YearStart: 1997, BodyType: "van", Country: "FR"},
		},
		"Peugeot": {
			{Name: "208", YearStart: 2012, BodyType: "hatchback", Country: "FR"},
			{Name: "308", YearStart: 2007, BodyType: "hatchback", Country: "FR"},
			{Name: "2008", YearStart: 2013, BodyType: "suv", Country: "FR"},
			{Name: "3008", YearStart: 2008, BodyType: "suv", Country: "FR"},
			{Name: "Partner", YearStart: 1996, BodyType: "van", Country: "FR"},
		},
		"Citroen": {
			{Name: "C3", YearStart: 2002, BodyType: "hatchback", Country: "FR"},
			{Name: "C4", YearStart: 2004, BodyType: "hatchback", Country: "FR"},
			{Name: "Berlingo", YearStart: 1996, BodyType: "van", Country: "FR"},
		},
		"Ford": {
			{Name: "Fiesta", YearStart: 1976, YearEnd: yr(2023), BodyType: "hatchback", Country: "US"},
			{Name: "Focus", YearStart: 1998, BodyType: "hatchback", Country: "US"},
			{Name: "Kuga", YearStart: 2008, BodyType: "suv", Country: "US"},
			{Name: "Transit", YearStart: 1965, BodyType: "van", Country: "US"},
		},
		"Opel": {
			{Name: "Corsa", YearStart: 1982, BodyType: "hatchback", Country: "DE"},
			{Name: "Astra", YearStart: 1991, BodyType: "hatchback", Country: "DE"},
			{Name: "Mokka", YearStart: 2012, BodyType: "suv", Country: "DE"},
		},
		"Skoda": {
			{Name: "Fabia", YearStart: 1999, BodyType: "hatchback", Country: "CZ"},
			{Name: "Octavia", YearStart: 1996, BodyType: "sedan", Country: "CZ"},
			{Name: "Kodiaq", YearStart: 2016, BodyType: "suv", Country: "CZ"},
		},
		"Volvo": {
			{Name: "V40", YearStart: 2012, YearEnd: yr(2019), BodyType: "hatchback", Country: "SE"},
			{Name: "V60", YearStart: 2010, BodyType: "wagon", Country: "SE"},
			{Name: "XC40", YearStart: 2017, BodyType: "suv", Country: "SE"},
			{Name: "XC60", YearStart: 2008, BodyType: "suv", Country: "SE"},
		},
		"Hyundai": {
			{Name: "i10", YearStart: 2007, BodyType: "hatchback", Country: "KR"},
			{Name: "i20", YearStart: 2008, BodyType: "hatchback", Country: "KR"},
			{Name: "Tucson", YearStart: 2004, BodyType: "suv", Country: "KR"},
			{Name: "Kona", YearStart: 2017, BodyType: "suv", Country: "KR"},
		},
		"Kia": {
			{Name: "Picanto", YearStart: 2004, BodyType: "hatchback", Country: "KR"},
			{Name: "Ceed", YearStart: 2006, BodyType: "hatchback", Country: "KR"},
			{Name: "Sportage", YearStart: 1993, BodyType: "suv", Country: "KR"},
			{Name: "Niro", YearStart: 2016, BodyType: "suv", Country: "KR"},
		},
		"Tesla": {
			{Name: "Model 3", YearStart: 2017, BodyType: "sedan", Country: "US"},
			{Name: "Model Y", YearStart: 2020, BodyType: "suv", Country: "US"},
			{Name: "Model S", YearStart: 2012, BodyType: "sedan", Country: "US"},
		},
		"Dacia": {
			{Name: "Sandero", YearStart: 2008, BodyType: "hatchback", Country: "RO"},
			{Name: "Duster", YearStart: 2010, BodyType: "suv", Country: "RO"},
			{Name: "Spring", YearStart: 2021, BodyType: "hatchback", Country: "RO"},
		},
		"Fiat": {
			{Name: "500", YearStart: 2007, BodyType: "hatchback", Country: "IT"},
			{Name: "Panda", YearStart: 1980, BodyType: "hatchback", Country: "IT"},
			{Name: "Ducato", YearStart: 1981, BodyType: "van", Country: "IT"},
		},
		"Mini": {
			{Name: "Cooper", YearStart: 2001, BodyType: "hatchback", Country: "GB"},
			{Name: "Countryman", YearStart: 2010, BodyType: "suv", Country: "GB"},
		},
		"Nissan": {
			{Name: "Micra", YearStart: 1982, YearEnd: yr(2023), BodyType: "hatchback", Country: "JP"},
			{Name: "Qashqai", YearStart: 2006, BodyType: "suv", Country: "JP"},
			{Name: "Leaf", YearStart: 2010, BodyType: "hatchback", Country: "JP"},
		},
		"Seat": {
			{Name: "Ibiza", YearStart: 1984, BodyType: "hatchback", Country: "ES"},
			{Name: "Leon", YearStart: 1999, BodyType: "hatchback", Country: "ES"},
			{Name: "Arona", YearStart: 2017, BodyType: "suv", Country: "ES"},
		},
	}
}
