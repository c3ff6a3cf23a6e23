package usecase

import (
	"context"

	"github.com/pradera/pradera/application/port/inbound"
	"github.com/pradera/pradera/application/port/outbound"
	"github.com/pradera/pradera/domain/entity"
	"github.com/pradera/pradera/infrastructure/service/logger"
)

type CertificateUseCase struct {
	certificates outbound.CertificateRepository
	logger       logger.Logger
	opts         Options
}

func NewCertificateUseCase(certificates outbound.CertificateRepository, log logger.Logger, opts Options) *CertificateUseCase {
	return &CertificateUseCase{certificates: certificates, logger: log, opts: opts.withDefaults()}
}

var _ inbound.CertificateUseCase = (*CertificateUseCase)(nil)

func (uc *CertificateUseCase) List(ctx context.Context) ([]*entity.Certificate, error) {
	certificates, err := uc.certificates.FindAll(ctx)
	return certificates, mapRepoError("certificate", "", "list certificates", err)
}

func (uc *CertificateUseCase) Get(ctx context.Context, id string) (*entity.Certificate, error) {
	certificate, err := uc.certificates.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError("certificate", id, "get certificate", err)
	}
	return certificate, nil
}

func (uc *CertificateUseCase) Create(ctx context.Context, actor outbound.TokenClaims, in inbound.CertificateInput) (*entity.Certificate, error) {
	if err := requireFields(field{"name", in.Name}); err != nil {
		return nil, err
	}

	now := uc.opts.Now()
	certificate := &entity.Certificate{
		ID:          uc.opts.NewID(),
		Name:        in.Name,
		Description: nonEmpty(in.Description),
		WorkerIDs:   []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.certificates.Create(ctx, certificate); err != nil {
		return nil, mapRepoError("certificate", certificate.ID, "create certificate", err)
	}

	uc.logger.Info(ctx, "Certificate created", map[string]interface{}{"certificate_id": certificate.ID, "user_id": actor.UserID})
	return certificate, nil
}

func (uc *CertificateUseCase) Update(ctx context.Context, actor outbound.TokenClaims, id string, in inbound.CertificateInput) (*entity.Certificate, error) {
	certificate, err := uc.certificates.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError("certificate", id, "get certificate", err)
	}
	setIfNotEmpty(&certificate.Name, in.Name)
	if v := nonEmpty(in.Description); v != nil {
		certificate.Description = v
	}
	certificate.UpdatedAt = uc.opts.Now()

	if err := uc.certificates.Update(ctx, certificate); err != nil {
		return nil, mapRepoError("certificate", id, "update certificate", err)
	}

	uc.logger.Info(ctx, "Certificate updated", map[string]interface{}{"certificate_id": id, "user_id": actor.UserID})
	return certificate, nil
}

func (uc *CertificateUseCase) Delete(ctx context.Context, actor outbound.TokenClaims, id string) error {
	if err := uc.certificates.Delete(ctx, id); err != nil {
		return mapRepoError("certificate", id, "delete certificate", err)
	}
	uc.logger.Info(ctx, "Certificate deleted", map[string]interface{}{"certificate_id": id, "user_id": actor.UserID})
	return nil
}

// AddWorker grants the certificate to a worker and returns the updated
// certificate.
func (uc *CertificateUseCase) AddWorker(ctx context.Context, actor outbound.TokenClaims, certificateID string, in inbound.CertificateWorkerInput) (*entity.Certificate, error) {
	if err := requireFields(field{"workerId", in.WorkerID}, field{"certificateId", certificateID}); err != nil {
		return nil, err
	}
	if err := uc.certificates.AddWorker(ctx, certificateID, in.WorkerID); err != nil {
		return nil, mapRepoError("certificate", certificateID, "add certificate worker", err)
	}
	uc.logger.Info(ctx, "Certificate granted", map[string]interface{}{
		"certificate_id": certificateID,
		"worker_id":      in.WorkerID,
		"user_id":        actor.UserID,
	})
	return uc.Get(ctx, certificateID)
}

func (uc *CertificateUseCase) RemoveWorker(ctx context.Context, actor outbound.TokenClaims, certificateID string, in inbound.CertificateWorkerInput) (*entity.Certificate, error) {
	if err := requireFields(field{"workerId", in.WorkerID}, field{"certificateId", certificateID}); err != nil {
		return nil, err
	}
	if err := uc.certificates.RemoveWorker(ctx, certificateID, in.WorkerID); err != nil {
		return nil, mapRepoError("certificate", certificateID, "remove certificate worker", err)
	}
	uc.logger.Info(ctx, "Certificate revoked", map[string]interface{}{
		"certificate_id": certificateID,
		"worker_id":      in.WorkerID,
		"user_id":        actor.UserID,
	})
	return uc.Get(ctx, certificateID)
}
