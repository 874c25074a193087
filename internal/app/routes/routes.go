package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/enrollment/internal/app/controllers"
)

// Controllers groups the handlers mounted by SetupRouter
type Controllers struct {
	CreditPrograms *controllers.CreditProgramController
	Students       *controllers.StudentController
	Subjects       *controllers.SubjectController
	StudentSubject *controllers.StudentSubjectController
	Teachers       *controllers.TeacherController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers) {
	api := router.Group("/api")

	creditPrograms := api.Group("/CreditPrograms")
	{
		creditPrograms.GET("", c.CreditPrograms.GetAllCreditPrograms)
		creditPrograms.GET("/:id", c.CreditPrograms.GetCreditProgramByID)
		creditPrograms.POST("", c.CreditPrograms.CreateCreditProgram)
		creditPrograms.DELETE("/:id", c.CreditPrograms.DeleteCreditProgram)
	}

	students := api.Group("/Students")
	{
		students.GET("", c.Students.GetAllStudents)
		students.GET("/:id", c.Students.GetStudentByID)
		students.POST("", c.Students.CreateStudent)
		students.PUT("/:id", c.Students.UpdateStudent)
		students.DELETE("/:id", c.Students.DeleteStudent)
	}

	// GET /Subjects/:id takes a credit program id
	subjects := api.Group("/Subjects")
	{
		subjects.GET("", c.Subjects.GetAllSubjects)
		subjects.GET("/:id", c.Subjects.GetSubjectsByCreditProgram)
		subjects.POST("", c.Subjects.CreateSubject)
		subjects.DELETE("/:id", c.Subjects.DeleteSubject)
	}

	// GET /StudentSubjects/:id takes a student id, DELETE an enrollment id
	studentSubjects := api.Group("/StudentSubjects")
	{
		studentSubjects.GET("", c.StudentSubject.GetAllEnrollments)
		studentSubjects.GET("/GetStudentSubjectsBySubjectId/:subjectId", c.StudentSubject.GetStudentsBySubject)
		studentSubjects.GET("/:id", c.StudentSubject.GetEnrollmentsByStudent)
		studentSubjects.POST("", c.StudentSubject.Enroll)
		studentSubjects.DELETE("/:id", c.StudentSubject.DeleteEnrollment)
	}

	teachers := api.Group("/Teachers")
	{
		teachers.GET("", c.Teachers.GetAllTeachers)
		teachers.GET("/:id", c.Teachers.GetTeacherByID)
		teachers.POST("", c.Teachers.CreateTeacher)
		teachers.DELETE("/:id", c.Teachers.DeleteTeacher)
	}

	teacherSubjects := api.Group("/TeacherSubjects")
	{
		teacherSubjects.GET("", c.Teachers.GetAllAssignments)
		teacherSubjects.POST("", c.Teachers.AssignTeacher)
		teacherSubjects.DELETE("/:id", c.Teachers.DeleteAssignment)
	}

	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/ping", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})
}
