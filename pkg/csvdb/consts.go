package csvdb

const (
	cRModePlain       = "plain"
	cRModeGZip        = "gzip"
	cRModeXlsx        = "xlsx"
	cTblIniExt        = "tbl.ini"
	cDefaultEncoding  = "utf-8"
	CDefaultDelimiter = ','
	cErrPathNotExists = "path not exists"
)

const (
	cManifestSection = "conf"
	cColumnsSection  = "columns"
	cSourcesSection  = "sources"
)
