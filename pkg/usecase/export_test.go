package usecase

// Export unexported functions for testing
var (
	WriteCSVForTest                    = writeCSV
	CreateOrUpdateBigQueryTableForTest = createOrUpdateBigQueryTable
	ReportObjectNameForTest            = reportObjectName
	SleepContextForTest                = sleepContext
	RateLimitMessagesForTest           = rateLimitMessages
)
