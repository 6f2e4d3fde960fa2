package usecase

import (
	"context"
	"fmt"
	"strings"

	"clinic-booking/internal/converter"
	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/domain/entity"
	"clinic-booking/internal/domain/repository"
	"clinic-booking/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// CatalogUsecase manages the admin reference data: roles, service types,
// services and appointment types.
type CatalogUsecase interface {
	GetRoles(ctx context.Context) ([]dto.RoleResponse, error)
	CreateRole(ctx context.Context, caller *entity.Caller, req *dto.RoleRequest) (*dto.RoleResponse, error)
	UpdateRole(ctx context.Context, caller *entity.Caller, id int, req *dto.RoleRequest) (*dto.RoleResponse, error)
	DeleteRole(ctx context.Context, caller *entity.Caller, id int) error

	GetServiceTypes(ctx context.Context) ([]dto.ServiceTypeResponse, error)
	CreateServiceType(ctx context.Context, caller *entity.Caller, req *dto.ServiceTypeRequest) (*dto.ServiceTypeResponse, error)
	UpdateServiceType(ctx context.Context, caller *entity.Caller, id int, req *dto.ServiceTypeRequest) (*dto.ServiceTypeResponse, error)
	DeleteServiceType(ctx context.Context, caller *entity.Caller, id int) error

	GetServices(ctx context.Context) (*dto.ServiceListResponse, error)
	CreateService(ctx context.Context, caller *entity.Caller, req *dto.ServiceRequest) (*dto.ServiceResponse, error)
	UpdateService(ctx context.Context, caller *entity.Caller, id int, req *dto.ServiceRequest) (*dto.ServiceResponse, error)
	DeleteService(ctx context.Context, caller *entity.Caller, id int) error

	GetAppointmentTypes(ctx context.Context) ([]dto.AppointmentTypeResponse, error)
	CreateAppointmentType(ctx context.Context, caller *entity.Caller, req *dto.AppointmentTypeRequest) (*dto.AppointmentTypeResponse, error)
	UpdateAppointmentType(ctx context.Context, caller *entity.Caller, id int, req *dto.AppointmentTypeRequest) (*dto.AppointmentTypeResponse, error)
	DeleteAppointmentType(ctx context.Context, caller *entity.Caller, id int) error
}

type catalogUsecase struct {
	db                  *gorm.DB
	log                 *logrus.Logger
	roleRepo            repository.RoleRepository
	serviceTypeRepo     repository.ServiceTypeRepository
	serviceRepo         repository.ServiceRepository
	appointmentTypeRepo repository.AppointmentTypeRepository
	activityLogger      service.ActivityLogger
}

func NewCatalogUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	roleRepo repository.RoleRepository,
	serviceTypeRepo repository.ServiceTypeRepository,
	serviceRepo repository.ServiceRepository,
	appointmentTypeRepo repository.AppointmentTypeRepository,
	activityLogger service.ActivityLogger,
) CatalogUsecase {
	return &catalogUsecase{
		db:                  db,
		log:                 log,
		roleRepo:            roleRepo,
		serviceTypeRepo:     serviceTypeRepo,
		serviceRepo:         serviceRepo,
		appointmentTypeRepo: appointmentTypeRepo,
		activityLogger:      activityLogger,
	}
}

// Roles

func (u *catalogUsecase) GetRoles(ctx context.Context) ([]dto.RoleResponse, error) {
	roles, err := u.roleRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find roles: %+v", err)
		return nil, ErrInternal
	}
	return converter.RolesToResponses(roles), nil
}

func (u *catalogUsecase) CreateRole(ctx context.Context, caller *entity.Caller, req *dto.RoleRequest) (*dto.RoleResponse, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	role := &entity.Role{Name: strings.TrimSpace(req.Name)}
	if role.Name == "" {
		return nil, requiredField("name")
	}
	if err := u.roleRepo.Create(ctx, u.db, role); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrRoleAlreadyExists
		}
		u.log.Warnf("Failed to create role: %+v", err)
		return nil, ErrInternal
	}

	u.activityLogger.Log(ctx, caller, entity.ActionRoleCreated, fmt.Sprintf("Created role '%s'", role.Name), entity.JSON{"id": role.ID})
	return &dto.RoleResponse{ID: role.ID, Name: role.Name}, nil
}

func (u *catalogUsecase) UpdateRole(ctx context.Context, caller *entity.Caller, id int, req *dto.RoleRequest) (*dto.RoleResponse, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	role, err := u.roleRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find role %d: %+v", id, err)
		return nil, ErrInternal
	}
	if role == nil {
		return nil, ErrRoleNotFound
	}

	oldName := role.Name
	role.Name = strings.TrimSpace(req.Name)
	if role.Name == "" {
		return nil, requiredField("name")
	}
	if err := u.roleRepo.Update(ctx, u.db, role); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrRoleAlreadyExists
		}
		u.log.Warnf("Failed to update role %d: %+v", id, err)
		return nil, ErrInternal
	}

	u.activityLogger.Log(ctx, caller, entity.ActionRoleUpdated,
		fmt.Sprintf("Renamed role '%s' to '%s'", oldName, role.Name), entity.JSON{"id": role.ID})
	return &dto.RoleResponse{ID: role.ID, Name: role.Name}, nil
}

func (u *catalogUsecase) DeleteRole(ctx context.Context, caller *entity.Caller, id int) error {
	if err := requireAdmin(caller); err != nil {
		return err
	}

	affected, err := u.roleRepo.Delete(ctx, u.db, id)
	if err != nil {
		if isForeignKeyError(err, "") {
			return ErrRecordInUse
		}
		u.log.Warnf("Failed to delete role %d: %+v", id, err)
		return ErrInternal
	}
	if affected == 0 {
		return ErrRoleNotFound
	}

	u.activityLogger.Log(ctx, caller, entity.ActionRoleDeleted, fmt.Sprintf("Deleted role #%d", id), nil)
	return nil
}

// Service types

func (u *catalogUsecase) GetServiceTypes(ctx context.Context) ([]dto.ServiceTypeResponse, error) {
	types, err := u.serviceTypeRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find service types: %+v", err)
		return nil, ErrInternal
	}
	return converter.ServiceTypesToResponses(types), nil
}

func (u *catalogUsecase) CreateServiceType(ctx context.Context, caller *entity.Caller, req *dto.ServiceTypeRequest) (*dto.ServiceTypeResponse, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	serviceType := &entity.ServiceType{Name: strings.TrimSpace(req.Name)}
	if serviceType.Name == "" {
		return nil, requiredField("name")
	}
	if err := u.serviceTypeRepo.Create(ctx, u.db, serviceType); err != nil {
		u.log.Warnf("Failed to create service type: %+v", err)
		return nil, ErrInternal
	}

	u.activityLogger.Log(ctx, caller, entity.ActionServiceTypeCreated,
		fmt.Sprintf("Created service type '%s'", serviceType.Name), entity.JSON{"id": serviceType.ID})
	return converter.ServiceTypeToResponse(serviceType), nil
}

func (u *catalogUsecase) UpdateServiceType(ctx context.Context, caller *entity.Caller, id int, req *dto.ServiceTypeRequest) (*dto.ServiceTypeResponse, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	serviceType, err := u.serviceTypeRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find service type %d: %+v", id, err)
		return nil, ErrInternal
	}
	if serviceType == nil {
		return nil, ErrServiceTypeNotFound
	}

	serviceType.Name = strings.TrimSpace(req.Name)
	if serviceType.Name == "" {
		return nil, requiredField("name")
	}
	if err := u.serviceTypeRepo.Update(ctx, u.db, serviceType); err != nil {
		u.log.Warnf("Failed to update service type %d: %+v", id, err)
		return nil, ErrInternal
	}

	u.activityLogger.Log(ctx, caller, entity.ActionServiceTypeUpdated,
		fmt.Sprintf("Updated service type #%d", id), entity.JSON{"name": serviceType.Name})
	return converter.ServiceTypeToResponse(serviceType), nil
}

func (u *catalogUsecase) DeleteServiceType(ctx context.Context, caller *entity.Caller, id int) error {
	if err := requireAdmin(caller); err != nil {
		return err
	}

	affected, err := u.serviceTypeRepo.Delete(ctx, u.db, id)
	if err != nil {
		if isForeignKeyError(err, "") {
			return ErrRecordInUse
		}
		u.log.Warnf("Failed to delete service type %d: %+v", id, err)
		return ErrInternal
	}
	if affected == 0 {
		return ErrServiceTypeNotFound
	}

	u.activityLogger.Log(ctx, caller, entity.ActionServiceTypeDeleted, fmt.Sprintf("Deleted service type #%d", id), nil)
	return nil
}

// Services

func (u *catalogUsecase) GetServices(ctx context.Context) (*dto.ServiceListResponse, error) {
	services, err := u.serviceRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find services: %+v", err)
		return nil, ErrInternal
	}
	return &dto.ServiceListResponse{
		Services: converter.ServicesToResponses(services),
		Total:    len(services),
	}, nil
}

func (u *catalogUsecase) CreateService(ctx context.Context, caller *entity.Caller, req *dto.ServiceRequest) (*dto.ServiceResponse, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	serviceType, err := u.findServiceType(ctx, req.ServiceTypeID)
	if err != nil {
		return nil, err
	}

	svc := &entity.Service{
		Name:          strings.TrimSpace(req.Name),
		ServiceTypeID: serviceType.ID,
	}
	if svc.Name == "" {
		return nil, requiredField("name")
	}
	if err := u.serviceRepo.Create(ctx, u.db, svc); err != nil {
		u.log.Warnf("Failed to create service: %+v", err)
		return nil, ErrInternal
	}
	svc.ServiceType = serviceType

	u.activityLogger.Log(ctx, caller, entity.ActionServiceCreated,
		fmt.Sprintf("Created service '%s'", svc.Name), entity.JSON{"id": svc.ID, "service_type_id": svc.ServiceTypeID})
	return converter.ServiceToResponse(svc), nil
}

func (u *catalogUsecase) UpdateService(ctx context.Context, caller *entity.Caller, id int, req *dto.ServiceRequest) (*dto.ServiceResponse, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	svc, err := u.serviceRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find service %d: %+v", id, err)
		return nil, ErrInternal
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}

	serviceType, err := u.findServiceType(ctx, req.ServiceTypeID)
	if err != nil {
		return nil, err
	}

	svc.Name = strings.TrimSpace(req.Name)
	if svc.Name == "" {
		return nil, requiredField("name")
	}
	svc.ServiceTypeID = serviceType.ID
	svc.ServiceType = serviceType
	if err := u.serviceRepo.Update(ctx, u.db, svc); err != nil {
		u.log.Warnf("Failed to update service %d: %+v", id, err)
		return nil, ErrInternal
	}

	u.activityLogger.Log(ctx, caller, entity.ActionServiceUpdated,
		fmt.Sprintf("Updated service #%d", id), entity.JSON{"name": svc.Name, "service_type_id": svc.ServiceTypeID})
	return converter.ServiceToResponse(svc), nil
}

func (u *catalogUsecase) DeleteService(ctx context.Context, caller *entity.Caller, id int) error {
	if err := requireAdmin(caller); err != nil {
		return err
	}

	affected, err := u.serviceRepo.Delete(ctx, u.db, id)
	if err != nil {
		if isForeignKeyError(err, "") {
			return ErrRecordInUse
		}
		u.log.Warnf("Failed to delete service %d: %+v", id, err)
		return ErrInternal
	}
	if affected == 0 {
		return ErrServiceNotFound
	}

	u.activityLogger.Log(ctx, caller, entity.ActionServiceDeleted, fmt.Sprintf("Deleted service #%d", id), nil)
	return nil
}

func (u *catalogUsecase) findServiceType(ctx context.Context, id int) (*entity.ServiceType, error) {
	if id <= 0 {
		return nil, requiredField("service_type_id")
	}
	serviceType, err := u.serviceTypeRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find service type %d: %+v", id, err)
		return nil, ErrInternal
	}
	if serviceType == nil {
		return nil, ErrServiceTypeNotFound
	}
	return serviceType, nil
}

// Appointment types

func (u *catalogUsecase) GetAppointmentTypes(ctx context.Context) ([]dto.AppointmentTypeResponse, error) {
	types, err := u.appointmentTypeRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find appointment types: %+v", err)
		return nil, ErrInternal
	}
	return converter.AppointmentTypesToResponses(types), nil
}

func (u *catalogUsecase) CreateAppointmentType(ctx context.Context, caller *entity.Caller, req *dto.AppointmentTypeRequest) (*dto.AppointmentTypeResponse, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	appointmentType := &entity.AppointmentType{Name: strings.TrimSpace(req.Name)}
	if appointmentType.Name == "" {
		return nil, requiredField("name")
	}
	if err := u.appointmentTypeRepo.Create(ctx, u.db, appointmentType); err != nil {
		u.log.Warnf("Failed to create appointment type: %+v", err)
		return nil, ErrInternal
	}

	u.activityLogger.Log(ctx, caller, entity.ActionAppointmentTypeCreate,
		fmt.Sprintf("Created appointment type '%s'", appointmentType.Name), entity.JSON{"id": appointmentType.ID})
	return &dto.AppointmentTypeResponse{ID: appointmentType.ID, Name: appointmentType.Name}, nil
}

func (u *catalogUsecase) UpdateAppointmentType(ctx context.Context, caller *entity.Caller, id int, req *dto.AppointmentTypeRequest) (*dto.AppointmentTypeResponse, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	appointmentType, err := u.appointmentTypeRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment type %d: %+v", id, err)
		return nil, ErrInternal
	}
	if appointmentType == nil {
		return nil, ErrAppointmentTypeNotFound
	}

	appointmentType.Name = strings.TrimSpace(req.Name)
	if appointmentType.Name == "" {
		return nil, requiredField("name")
	}
	if err := u.appointmentTypeRepo.Update(ctx, u.db, appointmentType); err != nil {
		u.log.Warnf("Failed to update appointment type %d: %+v", id, err)
		return nil, ErrInternal
	}

	u.activityLogger.Log(ctx, caller, entity.ActionAppointmentTypeUpdate,
		fmt.Sprintf("Updated appointment type #%d", id), entity.JSON{"name": appointmentType.Name})
	return &dto.AppointmentTypeResponse{ID: appointmentType.ID, Name: appointmentType.Name}, nil
}

// DeleteAppointmentType refuses the two built-in types that booking depends on.
func (u *catalogUsecase) DeleteAppointmentType(ctx context.Context, caller *entity.Caller, id int) error {
	if err := requireAdmin(caller); err != nil {
		return err
	}
	if id == entity.AppointmentTypeIDNormal || id == entity.AppointmentTypeIDFamily {
		return ErrRecordInUse
	}

	affected, err := u.appointmentTypeRepo.Delete(ctx, u.db, id)
	if err != nil {
		if isForeignKeyError(err, "") {
			return ErrRecordInUse
		}
		u.log.Warnf("Failed to delete appointment type %d: %+v", id, err)
		return ErrInternal
	}
	if affected == 0 {
		return ErrAppointmentTypeNotFound
	}

	u.activityLogger.Log(ctx, caller, entity.ActionAppointmentTypeDelete, fmt.Sprintf("Deleted appointment type #%d", id), nil)
	return nil
}
