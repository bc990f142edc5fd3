package mergeschool

var (
	// cell values read as missing, the NA tokens pandas recognizes plus
	// what JS exports leave behind
	defaultNullValues = []string{
		"", "#N/A", "#N/A N/A", "#NA", "-1.#IND", "-1.#QNAN", "-NaN", "-nan",
		"1.#IND", "1.#QNAN", "<NA>", "N/A", "NA", "NULL", "NaN", "None",
		"n/a", "nan", "null", "undefined",
	}

	readableExts = []string{".csv", ".tsv", ".txt", ".xlsx", ".csv.gz", ".tsv.gz"}
	writableExts = map[string]bool{".csv": true, ".tsv": true, ".txt": true}
)
