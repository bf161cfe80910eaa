package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	employeedomain "personnel-metrics-service/internal/employees/core/domain"
	employeeusecase "personnel-metrics-service/internal/employees/core/usecase"
	recorddomain "personnel-metrics-service/internal/records/core/domain"
	recordusecase "personnel-metrics-service/internal/records/core/usecase"
)

var (
	ErrMissingOwner = errors.New("owner id is required")
	ErrInvalidDate  = errors.New("upload date must be YYYY-MM-DD")
	ErrEmptyUpload  = errors.New("upload text is empty")
)

// EmployeeCreator is the slice of the employee use case bulk upload needs.
type EmployeeCreator interface {
	Create(ctx context.Context, in employeeusecase.CreateEmployeeInput) (*employeedomain.Employee, error)
}

// RecordCreator is the slice of the record use case bulk upload needs.
type RecordCreator interface {
	CreateTargetRatio(ctx context.Context, in recordusecase.CreateTargetRatioInput) (*recorddomain.TargetRatio, error)
	CreateDailyIncrease(ctx context.Context, in recordusecase.CreateDailyIncreaseInput) (*recorddomain.DailyIncrease, error)
}

type BulkUploadUseCase struct {
	employees EmployeeCreator
	records   RecordCreator
}

func NewBulkUploadUseCase(employees EmployeeCreator, records RecordCreator) *BulkUploadUseCase {
	return &BulkUploadUseCase{employees: employees, records: records}
}

// BulkUploadInput carries the raw paste: one employee per line, fields
// separated by tabs in the order
// no, activityType, fullName, type, total, target, ratio.
type BulkUploadInput struct {
	OwnerID string
	Date    string
	Text    string
}

type BulkUploadResult struct {
	EmployeesCreated int
	RatiosCreated    int
	IncreasesCreated int
	LinesSkipped     int
}

// Execute imports the pasted sheet line by line. Malformed lines are
// skipped and counted, never fatal; a store failure aborts the import and
// reports what was written up to that point.
func (uc *BulkUploadUseCase) Execute(ctx context.Context, in BulkUploadInput) (*BulkUploadResult, error) {
	if in.OwnerID == "" {
		return nil, ErrMissingOwner
	}
	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return nil, ErrInvalidDate
	}
	if strings.TrimSpace(in.Text) == "" {
		return nil, ErrEmptyUpload
	}

	result := &BulkUploadResult{}
	for _, rawLine := range strings.Split(in.Text, "\n") {
		line := strings.TrimRight(rawLine, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		parsed, ok := parseLine(line)
		if !ok {
			result.LinesSkipped++
			continue
		}

		emp, err := uc.employees.Create(ctx, employeeusecase.CreateEmployeeInput{
			OwnerID:    in.OwnerID,
			EmployeeNo: parsed.no,
			FirstName:  parsed.firstName,
			LastName:   parsed.lastName,
			Department: parsed.department(),
		})
		if err != nil {
			return result, err
		}
		result.EmployeesCreated++

		if parsed.target != "" && parsed.ratio != "" {
			_, err := uc.records.CreateTargetRatio(ctx, recordusecase.CreateTargetRatioInput{
				OwnerID:     in.OwnerID,
				EmployeeID:  emp.ID,
				Ratio:       parsed.ratio,
				TargetValue: parsed.target,
				RecordedOn:  in.Date,
			})
			if err != nil {
				return result, err
			}
			result.RatiosCreated++
		}

		if parsed.total != "" {
			_, err := uc.records.CreateDailyIncrease(ctx, recordusecase.CreateDailyIncreaseInput{
				OwnerID:    in.OwnerID,
				EmployeeID: emp.ID,
				Amount:     parsed.total,
				RecordedOn: in.Date,
			})
			if err != nil {
				return result, err
			}
			result.IncreasesCreated++
		}
	}

	return result, nil
}

type uploadLine struct {
	no           string
	activityType string
	firstName    string
	lastName     string
	kind         string
	total        string
	target       string
	ratio        string
}

// department rebuilds the stored department text from the sheet columns.
func (l uploadLine) department() string {
	if l.kind == "" {
		return l.activityType
	}
	return l.activityType + " - " + l.kind
}

// parseLine splits one tab-separated sheet row. Rows with fewer than four
// fields, a missing employee number or a name that is not at least two
// words are rejected.
func parseLine(line string) (uploadLine, bool) {
	fields := strings.Split(line, "\t")
	if len(fields) < 4 {
		return uploadLine{}, false
	}

	get := func(i int) string {
		if i < len(fields) {
			return strings.TrimSpace(fields[i])
		}
		return ""
	}

	parsed := uploadLine{
		no:           get(0),
		activityType: get(1),
		kind:         get(3),
		total:        get(4),
		target:       get(5),
		ratio:        get(6),
	}

	nameParts := strings.Fields(get(2))
	if parsed.no == "" || len(nameParts) < 2 {
		return uploadLine{}, false
	}
	parsed.firstName = strings.Join(nameParts[:len(nameParts)-1], " ")
	parsed.lastName = nameParts[len(nameParts)-1]

	return parsed, true
}
