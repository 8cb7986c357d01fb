package models

// User is a registered portal account. The password is stored as an
// argon2id hash, never in clear text.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Department   string `json:"department"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt,omitempty"`
}

// CoursesData holds a user's enrollment selections. Only catalog
// course ids are stored; names and departments live in the catalog.
type CoursesData struct {
	MyCourses        []string `json:"myCourses"`
	CompletedCourses []string `json:"completedCourses"`
}

// GpaCourse is one row of the GPA calculator.
type GpaCourse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	CreditHours float64 `json:"creditHours"`
	Grade       string  `json:"grade"`
}

type GpaData struct {
	Courses []GpaCourse `json:"courses"`
	GPA     float64     `json:"gpa"`
}

type Note struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type Task struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	Deadline  string `json:"deadline"`
	Priority  string `json:"priority"`
}

// ScheduleData is the weekly timetable: day -> period label -> course
// name, plus the editable period labels themselves.
type ScheduleData struct {
	Schedule      map[string]map[string]string `json:"schedule"`
	Periods       []string                     `json:"periods"`
	IsRamadanMode bool                         `json:"isRamadanMode"`
}

// FileMeta describes one uploaded file inside a material category.
// Path is the download URL; the bytes live under the per-user files
// tree and are reconciled with this record only at upload time.
type FileMeta struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Size       string `json:"size"`
	Type       string `json:"type"`
	Path       string `json:"path"`
	UploadedAt string `json:"uploadedAt"`
}

// MaterialCategory groups uploaded files within a course.
type MaterialCategory struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Files       []FileMeta `json:"files"`
}

// CatalogCourse is an entry of the shared course catalog.
type CatalogCourse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
}
