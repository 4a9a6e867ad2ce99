package services

// ServiceManager groups the services handed to the HTTP layer
type ServiceManager interface {
	Quiz() QuizService
	Auth() AuthService
	ImportExport() ImportExportService
}

type serviceManager struct {
	quiz         QuizService
	auth         AuthService
	importExport ImportExportService
}

func NewServiceManager(quiz QuizService, auth AuthService, importExport ImportExportService) ServiceManager {
	return &serviceManager{
		quiz:         quiz,
		auth:         auth,
		importExport: importExport,
	}
}

func (m *serviceManager) Quiz() QuizService                 { return m.quiz }
func (m *serviceManager) Auth() AuthService                 { return m.auth }
func (m *serviceManager) ImportExport() ImportExportService { return m.importExport }
