package initializers

import (
	"context"

	"hiring-flow-backend/config"
	"hiring-flow-backend/fiberlog"
	"hiring-flow-backend/lib/approval"
	authhandler "hiring-flow-backend/lib/auth"
	"hiring-flow-backend/lib/candidate"
	xlsexport "hiring-flow-backend/lib/export/xls"
	filestorage "hiring-flow-backend/lib/file-storage"
	"hiring-flow-backend/lib/notify"
	"hiring-flow-backend/lib/recommendation"
	salaryinsight "hiring-flow-backend/lib/salary-insight"
	"hiring-flow-backend/lib/verification"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3(ctx)
	InitSmtp()
	filestorage.NewHandler()
	notify.NewHandler()
	salaryinsight.NewHandler()
	xlsexport.NewHandler()
	authhandler.NewHandler()
	candidate.NewHandler()
	verification.NewHandler()
	approval.NewHandler()
	recommendation.NewHandler()
}
