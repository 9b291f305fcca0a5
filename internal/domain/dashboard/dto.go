package dashboard

// Stats is the headline summary of the employee directory.
type Stats struct {
	TotalEmployees    int64
	ActiveEmployees   int64
	OnLeaveEmployees  int64
	FlaggedEmployees  int64
	AverageAttendance float64 // 0 when there are no employees
	DepartmentCounts  []DepartmentCount
}

// DepartmentCount is ordered by Count descending in Stats.
type DepartmentCount struct {
	Department string
	Count      int64
}
