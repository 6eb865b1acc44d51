package geo

// alpha3ByName maps canonical English country names to ISO 3166-1 alpha-3
// codes. Lookup happens through the normalized index built in init, never
// against this map directly.
var alpha3ByName = map[string]string{
	"Afghanistan":                      "AFG",
	"Albania":                          "ALB",
	"Algeria":                          "DZA",
	"Angola":                           "AGO",
	"Argentina":                        "ARG",
	"Armenia":                          "ARM",
	"Australia":                        "AUS",
	"Austria":                          "AUT",
	"Azerbaijan":                       "AZE",
	"Bahamas":                          "BHS",
	"Bangladesh":                       "BGD",
	"Belarus":                          "BLR",
	"Belgium":                          "BEL",
	"Belize":                           "BLZ",
	"Benin":                            "BEN",
	"Bhutan":                           "BTN",
	"Bolivia":                          "BOL",
	"Bosnia and Herzegovina":           "BIH",
	"Botswana":                         "BWA",
	"Brazil":                           "BRA",
	"Bulgaria":                         "BGR",
	"Burkina Faso":                     "BFA",
	"Burundi":                          "BDI",
	"Cambodia":                         "KHM",
	"Cameroon":                         "CMR",
	"Canada":                           "CAN",
	"Cape Verde":                       "CPV",
	"Central African Republic":         "CAF",
	"Chad":                             "TCD",
	"Chile":                            "CHL",
	"China":                            "CHN",
	"Colombia":                         "COL",
	"Comoros":                          "COM",
	"Costa Rica":                       "CRI",
	"Croatia":                          "HRV",
	"Cuba":                             "CUB",
	"Cyprus":                           "CYP",
	"Czech Republic":                   "CZE",
	"Democratic Republic of the Congo": "COD",
	"Denmark":                          "DNK",
	"Djibouti":                         "DJI",
	"Dominican Republic":               "DOM",
	"Ecuador":                          "ECU",
	"Egypt":                            "EGY",
	"El Salvador":                      "SLV",
	"Equatorial Guinea":                "GNQ",
	"Eritrea":                          "ERI",
	"Estonia":                          "EST",
	"Eswatini":                         "SWZ",
	"Ethiopia":                         "ETH",
	"Fiji":                             "FJI",
	"Finland":                          "FIN",
	"France":                           "FRA",
	"Gabon":                            "GAB",
	"Gambia":                           "GMB",
	"Georgia":                          "GEO",
	"Germany":                          "DEU",
	"Ghana":                            "GHA",
	"Greece":                           "GRC",
	"Guatemala":                        "GTM",
	"Guinea":                           "GIN",
	"Guinea-Bissau":                    "GNB",
	"Guyana":                           "GUY",
	"Haiti":                            "HTI",
	"Honduras":                         "HND",
	"Hungary":                          "HUN",
	"Iceland":                          "ISL",
	"India":                            "IND",
	"Indonesia":                        "IDN",
	"Iran":                             "IRN",
	"Iraq":                             "IRQ",
	"Ireland":                          "IRL",
	"Israel":                           "ISR",
	"Italy":                            "ITA",
	"Ivory Coast":                      "CIV",
	"Jamaica":                          "JAM",
	"Japan":                            "JPN",
	"Jordan":                           "JOR",
	"Kazakhstan":                       "KAZ",
	"Kenya":                            "KEN",
	"Kuwait":                           "KWT",
	"Kyrgyzstan":                       "KGZ",
	"Laos":                             "LAO",
	"Latvia":                           "LVA",
	"Lebanon":                          "LBN",
	"Lesotho":                          "LSO",
	"Liberia":                          "LBR",
	"Libya":                            "LBY",
	"Lithuania":                        "LTU",
	"Luxembourg":                       "LUX",
	"Madagascar":                       "MDG",
	"Malawi":                           "MWI",
	"Malaysia":                         "MYS",
	"Mali":                             "MLI",
	"Mauritania":                       "MRT",
	"Mauritius":                        "MUS",
	"Mexico":                           "MEX",
	"Moldova":                          "MDA",
	"Mongolia":                         "MNG",
	"Montenegro":                       "MNE",
	"Morocco":                          "MAR",
	"Mozambique":                       "MOZ",
	"Myanmar":                          "MMR",
	"Namibia":                          "NAM",
	"Nepal":                            "NPL",
	"Netherlands":                      "NLD",
	"New Zealand":                      "NZL",
	"Nicaragua":                        "NIC",
	"Niger":                            "NER",
	"Nigeria":                          "NGA",
	"North Korea":                      "PRK",
	"North Macedonia":                  "MKD",
	"Norway":                           "NOR",
	"Oman":                             "OMN",
	"Pakistan":                         "PAK",
	"Panama":                           "PAN",
	"Papua New Guinea":                 "PNG",
	"Paraguay":                         "PRY",
	"Peru":                             "PER",
	"Philippines":                      "PHL",
	"Poland":                           "POL",
	"Portugal":                         "PRT",
	"Qatar":                            "QAT",
	"Republic of Congo":                "COG",
	"Romania":                          "ROU",
	"Russia":                           "RUS",
	"Rwanda":                           "RWA",
	"Saudi Arabia":                     "SAU",
	"Senegal":                          "SEN",
	"Serbia":                           "SRB",
	"Sierra Leone":                     "SLE",
	"Singapore":                        "SGP",
	"Slovakia":                         "SVK",
	"Slovenia":                         "SVN",
	"Somalia":                          "SOM",
	"South Africa":                     "ZAF",
	"South Korea":                      "KOR",
	"South Sudan":                      "SSD",
	"Spain":                            "ESP",
	"Sri Lanka":                        "LKA",
	"Sudan":                            "SDN",
	"Suriname":                         "SUR",
	"Sweden":                           "SWE",
	"Switzerland":                      "CHE",
	"Syria":                            "SYR",
	"Tajikistan":                       "TJK",
	"Tanzania":                         "TZA",
	"Thailand":                         "THA",
	"Timor-Leste":                      "TLS",
	"Togo":                             "TGO",
	"Trinidad and Tobago":              "TTO",
	"Tunisia":                          "TUN",
	"Turkey":                           "TUR",
	"Turkmenistan":                     "TKM",
	"Uganda":                           "UGA",
	"UK":                               "GBR",
	"Ukraine":                          "UKR",
	"United Arab Emirates":             "ARE",
	"Uruguay":                          "URY",
	"USA":                              "USA",
	"Uzbekistan":                       "UZB",
	"Venezuela":                        "VEN",
	"Vietnam":                          "VNM",
	"Yemen":                            "YEM",
	"Zambia":                           "ZMB",
	"Zimbabwe":                         "ZWE",
}

// aliases maps alternate spellings used by the indicator and geometry
// sources onto the canonical names above.
var aliases = map[string]string{
	"Bolivia (Plurinational State of)":          "Bolivia",
	"Cabo Verde":                                "Cape Verde",
	"Congo":                                     "Republic of Congo",
	"Congo, Dem. Rep.":                          "Democratic Republic of the Congo",
	"Congo, Rep.":                               "Republic of Congo",
	"Cote d'Ivoire":                             "Ivory Coast",
	"Côte d'Ivoire":                             "Ivory Coast",
	"Czechia":                                   "Czech Republic",
	"Democratic People's Republic of Korea":     "North Korea",
	"Egypt, Arab Rep.":                          "Egypt",
	"Gambia, The":                               "Gambia",
	"Great Britain":                             "UK",
	"Iran (Islamic Republic of)":                "Iran",
	"Iran, Islamic Rep.":                        "Iran",
	"Kyrgyz Republic":                           "Kyrgyzstan",
	"Lao PDR":                                   "Laos",
	"Lao People's Democratic Republic":          "Laos",
	"Myanmar (Burma)":                           "Myanmar",
	"Republic of Korea":                         "South Korea",
	"Republic of Moldova":                       "Moldova",
	"Russian Federation":                        "Russia",
	"Slovak Republic":                           "Slovakia",
	"Swaziland":                                 "Eswatini",
	"Syrian Arab Republic":                      "Syria",
	"East Timor":                                "Timor-Leste",
	"Turkiye":                                   "Turkey",
	"Türkiye":                                   "Turkey",
	"United Kingdom":                            "UK",
	"United Republic of Tanzania":               "Tanzania",
	"United States":                             "USA",
	"United States of America":                  "USA",
	"Venezuela (Bolivarian Republic of)":        "Venezuela",
	"Venezuela, RB":                             "Venezuela",
	"Viet Nam":                                  "Vietnam",
	"Yemen, Rep.":                               "Yemen",
	"Democratic Republic of Congo":              "Democratic Republic of the Congo",
	"Congo, the Democratic Republic of the":     "Democratic Republic of the Congo",
	"Tanzania, United Republic of":              "Tanzania",
	"Bolivia, Plurinational State of":           "Bolivia",
	"Korea, Rep.":                               "South Korea",
	"Korea, Dem. People's Rep.":                 "North Korea",
}
