package mergeschool

const (
	CDefaultDataDir    = "app/data"
	CDefaultSchoolFile = "highschoolinfo.csv"
	CDefaultMajorFile  = "all_major_info_merged.csv"
	CDefaultOutputFile = "kkokgo_master_db.csv"

	CCodeColumn   = "행정표준코드"
	COfficeColumn = "시도교육청코드"

	CDefaultSuffix     = "_school"
	CDefaultEncoding   = "utf-8"
	CDefaultSampleSize = 5

	cRoleSchool = "school"
	cRoleMajor  = "major"
	cLineWidth  = 50
)
