package regions

// countries holds every marketplace country region. Launch regions keep
// their historic ids; the rest are numbered from 100 in alpha-3 order.
var countries = []Region{
	{ID: 100, Slug: "abw", Name: "Aruba", Alpha2: "AW", MCC: ""},
	{ID: 101, Slug: "afg", Name: "Afghanistan", Alpha2: "AF", MCC: ""},
	{ID: 102, Slug: "ago", Name: "Angola", Alpha2: "AO", MCC: ""},
	{ID: 103, Slug: "aia", Name: "Anguilla", Alpha2: "AI", MCC: ""},
	{ID: 104, Slug: "ala", Name: "Åland Islands", Alpha2: "AX", MCC: ""},
	{ID: 105, Slug: "alb", Name: "Albania", Alpha2: "AL", MCC: ""},
	{ID: 106, Slug: "and", Name: "Andorra", Alpha2: "AD", MCC: ""},
	{ID: 107, Slug: "are", Name: "United Arab Emirates", Alpha2: "AE", MCC: ""},
	{ID: 20, Slug: "arg", Name: "Argentina", Alpha2: "AR", MCC: "722"},
	{ID: 108, Slug: "arm", Name: "Armenia", Alpha2: "AM", MCC: ""},
	{ID: 109, Slug: "asm", Name: "American Samoa", Alpha2: "AS", MCC: ""},
	{ID: 110, Slug: "ata", Name: "Antarctica", Alpha2: "AQ", MCC: ""},
	{ID: 111, Slug: "atf", Name: "French Southern Territories", Alpha2: "TF", MCC: ""},
	{ID: 112, Slug: "atg", Name: "Antigua and Barbuda", Alpha2: "AG", MCC: ""},
	{ID: 113, Slug: "aus", Name: "Australia", Alpha2: "AU", MCC: ""},
	{ID: 114, Slug: "aut", Name: "Austria", Alpha2: "AT", MCC: ""},
	{ID: 115, Slug: "aze", Name: "Azerbaijan", Alpha2: "AZ", MCC: ""},
	{ID: 116, Slug: "bdi", Name: "Burundi", Alpha2: "BI", MCC: ""},
	{ID: 117, Slug: "bel", Name: "Belgium", Alpha2: "BE", MCC: ""},
	{ID: 118, Slug: "ben", Name: "Benin", Alpha2: "BJ", MCC: ""},
	{ID: 119, Slug: "bes", Name: "Bonaire, Sint Eustatius and Saba", Alpha2: "BQ", MCC: ""},
	{ID: 120, Slug: "bfa", Name: "Burkina Faso", Alpha2: "BF", MCC: ""},
	{ID: 121, Slug: "bgd", Name: "Bangladesh", Alpha2: "BD", MCC: ""},
	{ID: 122, Slug: "bgr", Name: "Bulgaria", Alpha2: "BG", MCC: ""},
	{ID: 123, Slug: "bhr", Name: "Bahrain", Alpha2: "BH", MCC: ""},
	{ID: 124, Slug: "bhs", Name: "Bahamas", Alpha2: "BS", MCC: ""},
	{ID: 125, Slug: "bih", Name: "Bosnia and Herzegovina", Alpha2: "BA", MCC: ""},
	{ID: 126, Slug: "blm", Name: "Saint Barthélemy", Alpha2: "BL", MCC: ""},
	{ID: 127, Slug: "blr", Name: "Belarus", Alpha2: "BY", MCC: ""},
	{ID: 128, Slug: "blz", Name: "Belize", Alpha2: "BZ", MCC: ""},
	{ID: 129, Slug: "bmu", Name: "Bermuda", Alpha2: "BM", MCC: ""},
	{ID: 130, Slug: "bol", Name: "Bolivia, Plurinational State of", Alpha2: "BO", MCC: ""},
	{ID: 7, Slug: "bra", Name: "Brazil", Alpha2: "BR", MCC: "724"},
	{ID: 131, Slug: "brb", Name: "Barbados", Alpha2: "BB", MCC: ""},
	{ID: 132, Slug: "brn", Name: "Brunei Darussalam", Alpha2: "BN", MCC: ""},
	{ID: 133, Slug: "btn", Name: "Bhutan", Alpha2: "BT", MCC: ""},
	{ID: 134, Slug: "bvt", Name: "Bouvet Island", Alpha2: "BV", MCC: ""},
	{ID: 135, Slug: "bwa", Name: "Botswana", Alpha2: "BW", MCC: ""},
	{ID: 136, Slug: "caf", Name: "Central African Republic", Alpha2: "CF", MCC: ""},
	{ID: 137, Slug: "can", Name: "Canada", Alpha2: "CA", MCC: ""},
	{ID: 138, Slug: "cck", Name: "Cocos (Keeling) Islands", Alpha2: "CC", MCC: ""},
	{ID: 139, Slug: "che", Name: "Switzerland", Alpha2: "CH", MCC: ""},
	{ID: 140, Slug: "chl", Name: "Chile", Alpha2: "CL", MCC: ""},
	{ID: 141, Slug: "chn", Name: "China", Alpha2: "CN", MCC: ""},
	{ID: 142, Slug: "civ", Name: "Côte d'Ivoire", Alpha2: "CI", MCC: ""},
	{ID: 143, Slug: "cmr", Name: "Cameroon", Alpha2: "CM", MCC: ""},
	{ID: 144, Slug: "cod", Name: "Congo, Democratic Republic of the", Alpha2: "CD", MCC: ""},
	{ID: 145, Slug: "cog", Name: "Congo", Alpha2: "CG", MCC: ""},
	{ID: 146, Slug: "cok", Name: "Cook Islands", Alpha2: "CK", MCC: ""},
	{ID: 9, Slug: "col", Name: "Colombia", Alpha2: "CO", MCC: "732"},
	{ID: 147, Slug: "com", Name: "Comoros", Alpha2: "KM", MCC: ""},
	{ID: 148, Slug: "cpv", Name: "Cabo Verde", Alpha2: "CV", MCC: ""},
	{ID: 149, Slug: "cri", Name: "Costa Rica", Alpha2: "CR", MCC: ""},
	{ID: 150, Slug: "cub", Name: "Cuba", Alpha2: "CU", MCC: ""},
	{ID: 151, Slug: "cuw", Name: "Curaçao", Alpha2: "CW", MCC: ""},
	{ID: 152, Slug: "cxr", Name: "Christmas Island", Alpha2: "CX", MCC: ""},
	{ID: 153, Slug: "cym", Name: "Cayman Islands", Alpha2: "KY", MCC: ""},
	{ID: 154, Slug: "cyp", Name: "Cyprus", Alpha2: "CY", MCC: ""},
	{ID: 155, Slug: "cze", Name: "Czech Republic", Alpha2: "CZ", MCC: ""},
	{ID: 14, Slug: "deu", Name: "Germany", Alpha2: "DE", MCC: "262"},
	{ID: 156, Slug: "dji", Name: "Djibouti", Alpha2: "DJ", MCC: ""},
	{ID: 157, Slug: "dma", Name: "Dominica", Alpha2: "DM", MCC: ""},
	{ID: 158, Slug: "dnk", Name: "Denmark", Alpha2: "DK", MCC: ""},
	{ID: 159, Slug: "dom", Name: "Dominican Republic", Alpha2: "DO", MCC: ""},
	{ID: 160, Slug: "dza", Name: "Algeria", Alpha2: "DZ", MCC: ""},
	{ID: 161, Slug: "ecu", Name: "Ecuador", Alpha2: "EC", MCC: ""},
	{ID: 162, Slug: "egy", Name: "Egypt", Alpha2: "EG", MCC: ""},
	{ID: 163, Slug: "eri", Name: "Eritrea", Alpha2: "ER", MCC: ""},
	{ID: 164, Slug: "esh", Name: "Western Sahara", Alpha2: "EH", MCC: ""},
	{ID: 8, Slug: "esp", Name: "Spain", Alpha2: "ES", MCC: "214"},
	{ID: 165, Slug: "est", Name: "Estonia", Alpha2: "EE", MCC: ""},
	{ID: 166, Slug: "eth", Name: "Ethiopia", Alpha2: "ET", MCC: ""},
	{ID: 167, Slug: "fin", Name: "Finland", Alpha2: "FI", MCC: ""},
	{ID: 168, Slug: "fji", Name: "Fiji", Alpha2: "FJ", MCC: ""},
	{ID: 169, Slug: "flk", Name: "Falkland Islands (Malvinas)", Alpha2: "FK", MCC: ""},
	{ID: 170, Slug: "fra", Name: "France", Alpha2: "FR", MCC: ""},
	{ID: 171, Slug: "fro", Name: "Faroe Islands", Alpha2: "FO", MCC: ""},
	{ID: 172, Slug: "fsm", Name: "Micronesia, Federated States of", Alpha2: "FM", MCC: ""},
	{ID: 173, Slug: "gab", Name: "Gabon", Alpha2: "GA", MCC: ""},
	{ID: 4, Slug: "gbr", Name: "United Kingdom", Alpha2: "GB", MCC: "234"},
	{ID: 174, Slug: "geo", Name: "Georgia", Alpha2: "GE", MCC: ""},
	{ID: 175, Slug: "ggy", Name: "Guernsey", Alpha2: "GG", MCC: ""},
	{ID: 176, Slug: "gha", Name: "Ghana", Alpha2: "GH", MCC: ""},
	{ID: 177, Slug: "gib", Name: "Gibraltar", Alpha2: "GI", MCC: ""},
	{ID: 178, Slug: "gin", Name: "Guinea-Conakry", Alpha2: "GN", MCC: ""},
	{ID: 179, Slug: "glp", Name: "Guadeloupe", Alpha2: "GP", MCC: ""},
	{ID: 180, Slug: "gmb", Name: "Gambia", Alpha2: "GM", MCC: ""},
	{ID: 181, Slug: "gnb", Name: "Guinea-Bissau", Alpha2: "GW", MCC: ""},
	{ID: 182, Slug: "gnq", Name: "Equatorial Guinea", Alpha2: "GQ", MCC: ""},
	{ID: 17, Slug: "grc", Name: "Greece", Alpha2: "GR", MCC: "202"},
	{ID: 183, Slug: "grd", Name: "Grenada", Alpha2: "GD", MCC: ""},
	{ID: 184, Slug: "grl", Name: "Greenland", Alpha2: "GL", MCC: ""},
	{ID: 185, Slug: "gtm", Name: "Guatemala", Alpha2: "GT", MCC: ""},
	{ID: 186, Slug: "guf", Name: "French Guiana", Alpha2: "GF", MCC: ""},
	{ID: 187, Slug: "gum", Name: "Guam", Alpha2: "GU", MCC: ""},
	{ID: 188, Slug: "guy", Name: "Guyana", Alpha2: "GY", MCC: ""},
	{ID: 189, Slug: "hkg", Name: "Hong Kong", Alpha2: "HK", MCC: ""},
	{ID: 190, Slug: "hmd", Name: "Heard Island and McDonald Islands", Alpha2: "HM", MCC: ""},
	{ID: 191, Slug: "hnd", Name: "Honduras", Alpha2: "HN", MCC: ""},
	{ID: 192, Slug: "hrv", Name: "Croatia", Alpha2: "HR", MCC: ""},
	{ID: 193, Slug: "hti", Name: "Haiti", Alpha2: "HT", MCC: ""},
	{ID: 13, Slug: "hun", Name: "Hungary", Alpha2: "HU", MCC: "216"},
	{ID: 194, Slug: "idn", Name: "Indonesia", Alpha2: "ID", MCC: ""},
	{ID: 195, Slug: "imn", Name: "Isle of Man", Alpha2: "IM", MCC: ""},
	{ID: 196, Slug: "ind", Name: "India", Alpha2: "IN", MCC: ""},
	{ID: 197, Slug: "iot", Name: "British Indian Ocean Territory", Alpha2: "IO", MCC: ""},
	{ID: 198, Slug: "irl", Name: "Ireland", Alpha2: "IE", MCC: ""},
	{ID: 199, Slug: "irq", Name: "Iraq", Alpha2: "IQ", MCC: ""},
	{ID: 200, Slug: "isl", Name: "Iceland", Alpha2: "IS", MCC: ""},
	{ID: 201, Slug: "isr", Name: "Israel", Alpha2: "IL", MCC: ""},
	{ID: 202, Slug: "ita", Name: "Italy", Alpha2: "IT", MCC: ""},
	{ID: 203, Slug: "jam", Name: "Jamaica", Alpha2: "JM", MCC: ""},
	{ID: 204, Slug: "jey", Name: "Jersey", Alpha2: "JE", MCC: ""},
	{ID: 205, Slug: "jor", Name: "Jordan", Alpha2: "JO", MCC: ""},
	{ID: 206, Slug: "jpn", Name: "Japan", Alpha2: "JP", MCC: ""},
	{ID: 207, Slug: "kaz", Name: "Kazakhstan", Alpha2: "KZ", MCC: ""},
	{ID: 208, Slug: "ken", Name: "Kenya", Alpha2: "KE", MCC: ""},
	{ID: 209, Slug: "kgz", Name: "Kyrgyzstan", Alpha2: "KG", MCC: ""},
	{ID: 210, Slug: "khm", Name: "Cambodia", Alpha2: "KH", MCC: ""},
	{ID: 211, Slug: "kir", Name: "Kiribati", Alpha2: "KI", MCC: ""},
	{ID: 212, Slug: "kna", Name: "Saint Kitts and Nevis", Alpha2: "KN", MCC: ""},
	{ID: 213, Slug: "kor", Name: "Korea, Republic of", Alpha2: "KR", MCC: ""},
	{ID: 214, Slug: "kwt", Name: "Kuwait", Alpha2: "KW", MCC: ""},
	{ID: 215, Slug: "lao", Name: "Lao People's Democratic Republic", Alpha2: "LA", MCC: ""},
	{ID: 216, Slug: "lbn", Name: "Lebanon", Alpha2: "LB", MCC: ""},
	{ID: 217, Slug: "lbr", Name: "Liberia", Alpha2: "LR", MCC: ""},
	{ID: 218, Slug: "lby", Name: "Libya", Alpha2: "LY", MCC: ""},
	{ID: 219, Slug: "lca", Name: "Saint Lucia", Alpha2: "LC", MCC: ""},
	{ID: 220, Slug: "lie", Name: "Liechtenstein", Alpha2: "LI", MCC: ""},
	{ID: 221, Slug: "lka", Name: "Sri Lanka", Alpha2: "LK", MCC: ""},
	{ID: 222, Slug: "lso", Name: "Lesotho", Alpha2: "LS", MCC: ""},
	{ID: 223, Slug: "ltu", Name: "Lithuania", Alpha2: "LT", MCC: ""},
	{ID: 224, Slug: "lux", Name: "Luxembourg", Alpha2: "LU", MCC: ""},
	{ID: 225, Slug: "lva", Name: "Latvia", Alpha2: "LV", MCC: ""},
	{ID: 226, Slug: "mac", Name: "Macao", Alpha2: "MO", MCC: ""},
	{ID: 227, Slug: "maf", Name: "Saint Martin (French part)", Alpha2: "MF", MCC: ""},
	{ID: 228, Slug: "mar", Name: "Morocco", Alpha2: "MA", MCC: ""},
	{ID: 229, Slug: "mco", Name: "Monaco", Alpha2: "MC", MCC: ""},
	{ID: 230, Slug: "mda", Name: "Moldova, Republic of", Alpha2: "MD", MCC: ""},
	{ID: 231, Slug: "mdg", Name: "Madagascar", Alpha2: "MG", MCC: ""},
	{ID: 232, Slug: "mdv", Name: "Maldives", Alpha2: "MV", MCC: ""},
	{ID: 12, Slug: "mex", Name: "Mexico", Alpha2: "MX", MCC: "334"},
	{ID: 233, Slug: "mhl", Name: "Marshall Islands", Alpha2: "MH", MCC: ""},
	{ID: 234, Slug: "mkd", Name: "Macedonia, the former Yugoslav Republic of", Alpha2: "MK", MCC: ""},
	{ID: 235, Slug: "mli", Name: "Mali", Alpha2: "ML", MCC: ""},
	{ID: 236, Slug: "mlt", Name: "Malta", Alpha2: "MT", MCC: ""},
	{ID: 237, Slug: "mmr", Name: "Myanmar", Alpha2: "MM", MCC: ""},
	{ID: 15, Slug: "mne", Name: "Montenegro", Alpha2: "ME", MCC: "297"},
	{ID: 238, Slug: "mng", Name: "Mongolia", Alpha2: "MN", MCC: ""},
	{ID: 239, Slug: "mnp", Name: "Northern Mariana Islands", Alpha2: "MP", MCC: ""},
	{ID: 240, Slug: "moz", Name: "Mozambique", Alpha2: "MZ", MCC: ""},
	{ID: 241, Slug: "mrt", Name: "Mauritania", Alpha2: "MR", MCC: ""},
	{ID: 242, Slug: "msr", Name: "Montserrat", Alpha2: "MS", MCC: ""},
	{ID: 243, Slug: "mtq", Name: "Martinique", Alpha2: "MQ", MCC: ""},
	{ID: 244, Slug: "mus", Name: "Mauritius", Alpha2: "MU", MCC: ""},
	{ID: 245, Slug: "mwi", Name: "Malawi", Alpha2: "MW", MCC: ""},
	{ID: 246, Slug: "mys", Name: "Malaysia", Alpha2: "MY", MCC: ""},
	{ID: 247, Slug: "myt", Name: "Mayotte", Alpha2: "YT", MCC: ""},
	{ID: 248, Slug: "nam", Name: "Namibia", Alpha2: "NA", MCC: ""},
	{ID: 249, Slug: "ncl", Name: "New Caledonia", Alpha2: "NC", MCC: ""},
	{ID: 250, Slug: "ner", Name: "Niger", Alpha2: "NE", MCC: ""},
	{ID: 251, Slug: "nfk", Name: "Norfolk Island", Alpha2: "NF", MCC: ""},
	{ID: 252, Slug: "nga", Name: "Nigeria", Alpha2: "NG", MCC: ""},
	{ID: 253, Slug: "nic", Name: "Nicaragua", Alpha2: "NI", MCC: ""},
	{ID: 254, Slug: "niu", Name: "Niue", Alpha2: "NU", MCC: ""},
	{ID: 255, Slug: "nld", Name: "Netherlands", Alpha2: "NL", MCC: ""},
	{ID: 256, Slug: "nor", Name: "Norway", Alpha2: "NO", MCC: ""},
	{ID: 257, Slug: "npl", Name: "Nepal", Alpha2: "NP", MCC: ""},
	{ID: 258, Slug: "nru", Name: "Nauru", Alpha2: "NR", MCC: ""},
	{ID: 259, Slug: "nzl", Name: "New Zealand", Alpha2: "NZ", MCC: ""},
	{ID: 260, Slug: "omn", Name: "Oman", Alpha2: "OM", MCC: ""},
	{ID: 261, Slug: "pak", Name: "Pakistan", Alpha2: "PK", MCC: ""},
	{ID: 262, Slug: "pan", Name: "Panama", Alpha2: "PA", MCC: ""},
	{ID: 263, Slug: "pcn", Name: "Pitcairn", Alpha2: "PN", MCC: ""},
	{ID: 18, Slug: "per", Name: "Peru", Alpha2: "PE", MCC: "716"},
	{ID: 264, Slug: "phl", Name: "Philippines", Alpha2: "PH", MCC: ""},
	{ID: 265, Slug: "plw", Name: "Palau", Alpha2: "PW", MCC: ""},
	{ID: 266, Slug: "png", Name: "Papua New Guinea", Alpha2: "PG", MCC: ""},
	{ID: 11, Slug: "pol", Name: "Poland", Alpha2: "PL", MCC: "260"},
	{ID: 267, Slug: "pri", Name: "Puerto Rico", Alpha2: "PR", MCC: ""},
	{ID: 268, Slug: "prt", Name: "Portugal", Alpha2: "PT", MCC: ""},
	{ID: 269, Slug: "pry", Name: "Paraguay", Alpha2: "PY", MCC: ""},
	{ID: 270, Slug: "pse", Name: "Palestine, State of", Alpha2: "PS", MCC: ""},
	{ID: 271, Slug: "pyf", Name: "French Polynesia", Alpha2: "PF", MCC: ""},
	{ID: 272, Slug: "qat", Name: "Qatar", Alpha2: "QA", MCC: ""},
	{ID: 273, Slug: "reu", Name: "Réunion", Alpha2: "RE", MCC: ""},
	{ID: 274, Slug: "rou", Name: "Romania", Alpha2: "RO", MCC: ""},
	{ID: 275, Slug: "rus", Name: "Russia", Alpha2: "RU", MCC: ""},
	{ID: 276, Slug: "rwa", Name: "Rwanda", Alpha2: "RW", MCC: ""},
	{ID: 277, Slug: "sau", Name: "Saudi Arabia", Alpha2: "SA", MCC: ""},
	{ID: 278, Slug: "sdn", Name: "Sudan", Alpha2: "SD", MCC: ""},
	{ID: 279, Slug: "sen", Name: "Senegal", Alpha2: "SN", MCC: ""},
	{ID: 280, Slug: "sgp", Name: "Singapore", Alpha2: "SG", MCC: ""},
	{ID: 281, Slug: "sgs", Name: "South Georgia and the South Sandwich Islands", Alpha2: "GS", MCC: ""},
	{ID: 282, Slug: "shn", Name: "Saint Helena, Ascension and Tristan da Cunha", Alpha2: "SH", MCC: ""},
	{ID: 283, Slug: "sjm", Name: "Svalbard and Jan Mayen", Alpha2: "SJ", MCC: ""},
	{ID: 284, Slug: "slb", Name: "Solomon Islands", Alpha2: "SB", MCC: ""},
	{ID: 285, Slug: "sle", Name: "Sierra Leone", Alpha2: "SL", MCC: ""},
	{ID: 286, Slug: "slv", Name: "El Salvador", Alpha2: "SV", MCC: ""},
	{ID: 287, Slug: "smr", Name: "San Marino", Alpha2: "SM", MCC: ""},
	{ID: 288, Slug: "som", Name: "Somalia", Alpha2: "SO", MCC: ""},
	{ID: 289, Slug: "spm", Name: "Saint Pierre and Miquelon", Alpha2: "PM", MCC: ""},
	{ID: 290, Slug: "srb", Name: "Serbia", Alpha2: "RS", MCC: ""},
	{ID: 291, Slug: "ssd", Name: "South Sudan", Alpha2: "SS", MCC: ""},
	{ID: 292, Slug: "stp", Name: "Sao Tome and Principe", Alpha2: "ST", MCC: ""},
	{ID: 293, Slug: "sur", Name: "Suriname", Alpha2: "SR", MCC: ""},
	{ID: 294, Slug: "svk", Name: "Slovakia", Alpha2: "SK", MCC: ""},
	{ID: 295, Slug: "svn", Name: "Slovenia", Alpha2: "SI", MCC: ""},
	{ID: 296, Slug: "swe", Name: "Sweden", Alpha2: "SE", MCC: ""},
	{ID: 297, Slug: "swz", Name: "Swaziland", Alpha2: "SZ", MCC: ""},
	{ID: 298, Slug: "sxm", Name: "Sint Maarten (Dutch part)", Alpha2: "SX", MCC: ""},
	{ID: 299, Slug: "syc", Name: "Seychelles", Alpha2: "SC", MCC: ""},
	{ID: 300, Slug: "syr", Name: "Syrian Arab Republic", Alpha2: "SY", MCC: ""},
	{ID: 301, Slug: "tca", Name: "Turks and Caicos Islands", Alpha2: "TC", MCC: ""},
	{ID: 302, Slug: "tcd", Name: "Chad", Alpha2: "TD", MCC: ""},
	{ID: 303, Slug: "tgo", Name: "Togo", Alpha2: "TG", MCC: ""},
	{ID: 304, Slug: "tha", Name: "Thailand", Alpha2: "TH", MCC: ""},
	{ID: 305, Slug: "tjk", Name: "Tajikistan", Alpha2: "TJ", MCC: ""},
	{ID: 306, Slug: "tkl", Name: "Tokelau", Alpha2: "TK", MCC: ""},
	{ID: 307, Slug: "tkm", Name: "Turkmenistan", Alpha2: "TM", MCC: ""},
	{ID: 308, Slug: "tls", Name: "Timor-Leste", Alpha2: "TL", MCC: ""},
	{ID: 309, Slug: "ton", Name: "Tonga", Alpha2: "TO", MCC: ""},
	{ID: 310, Slug: "tto", Name: "Trinidad and Tobago", Alpha2: "TT", MCC: ""},
	{ID: 311, Slug: "tun", Name: "Tunisia", Alpha2: "TN", MCC: ""},
	{ID: 312, Slug: "tur", Name: "Turkey", Alpha2: "TR", MCC: ""},
	{ID: 313, Slug: "tuv", Name: "Tuvalu", Alpha2: "TV", MCC: ""},
	{ID: 314, Slug: "twn", Name: "Taiwan", Alpha2: "TW", MCC: ""},
	{ID: 315, Slug: "tza", Name: "Tanzania", Alpha2: "TZ", MCC: ""},
	{ID: 316, Slug: "uga", Name: "Uganda", Alpha2: "UG", MCC: ""},
	{ID: 317, Slug: "ukr", Name: "Ukraine", Alpha2: "UA", MCC: ""},
	{ID: 318, Slug: "umi", Name: "United States Minor Outlying Islands", Alpha2: "UM", MCC: ""},
	{ID: 19, Slug: "ury", Name: "Uruguay", Alpha2: "UY", MCC: "748"},
	{ID: 2, Slug: "usa", Name: "United States", Alpha2: "US", MCC: "310"},
	{ID: 319, Slug: "uzb", Name: "Uzbekistan", Alpha2: "UZ", MCC: ""},
	{ID: 320, Slug: "vat", Name: "Holy See", Alpha2: "VA", MCC: ""},
	{ID: 321, Slug: "vct", Name: "Saint Vincent and the Grenadines", Alpha2: "VC", MCC: ""},
	{ID: 10, Slug: "ven", Name: "Venezuela", Alpha2: "VE", MCC: "734"},
	{ID: 322, Slug: "vgb", Name: "Virgin Islands, British", Alpha2: "VG", MCC: ""},
	{ID: 323, Slug: "vir", Name: "Virgin Islands, U.S.", Alpha2: "VI", MCC: ""},
	{ID: 324, Slug: "vnm", Name: "Viet Nam", Alpha2: "VN", MCC: ""},
	{ID: 325, Slug: "vut", Name: "Vanuatu", Alpha2: "VU", MCC: ""},
	{ID: 326, Slug: "wlf", Name: "Wallis and Futuna", Alpha2: "WF", MCC: ""},
	{ID: 327, Slug: "wsm", Name: "Samoa", Alpha2: "WS", MCC: ""},
	{ID: 328, Slug: "yem", Name: "Yemen", Alpha2: "YE", MCC: ""},
	{ID: 329, Slug: "zaf", Name: "South Africa", Alpha2: "ZA", MCC: ""},
	{ID: 330, Slug: "zmb", Name: "Zambia", Alpha2: "ZM", MCC: ""},
	{ID: 331, Slug: "zwe", Name: "Zimbabwe", Alpha2: "ZW", MCC: ""},
}
