package usecase_test

// Fakes en memoria de los puertos de persistencia. Son thread-safe: las
// pruebas de concurrencia dependen de que ActualizarEstado se comporte como
// la actualización condicional atómica del contrato.

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dicri-mp/expedientes-api/internal/domain"
	"github.com/dicri-mp/expedientes-api/internal/domain/entity"
	"github.com/dicri-mp/expedientes-api/internal/domain/repository"
)

type memStore struct {
	mu          sync.Mutex
	usuarios    map[string]*entity.Usuario
	expedientes map[string]*entity.Expediente
	indicios    map[string]*entity.Indicio
}

func newMemStore() *memStore {
	return &memStore{
		usuarios:    make(map[string]*entity.Usuario),
		expedientes: make(map[string]*entity.Expediente),
		indicios:    make(map[string]*entity.Indicio),
	}
}

func (s *memStore) agregarUsuario(u *entity.Usuario) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *u
	s.usuarios[u.ID] = &c
}

// ── ExpedienteRepository ─────────────────────────────────────────────────────

type memExpedientes struct{ s *memStore }

var _ repository.ExpedienteRepository = (*memExpedientes)(nil)

func (r *memExpedientes) Crear(_ context.Context, e *entity.Expediente) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existente := range r.s.expedientes {
		if existente.NumeroExpediente == e.NumeroExpediente {
			return fmt.Errorf("%w: el numero de expediente ya existe", domain.ErrDuplicado)
		}
	}
	c := *e
	r.s.expedientes[e.ID] = &c
	return nil
}

func (r *memExpedientes) ObtenerPorID(_ context.Context, id string) (*entity.Expediente, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.expedientes[id]
	if !ok {
		return nil, nil
	}
	c := *e
	return &c, nil
}

func (r *memExpedientes) Listar(_ context.Context, filtro repository.ExpedienteFiltro) ([]*entity.Expediente, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.Expediente
	for _, e := range r.s.expedientes {
		if filtro.Estado != nil && e.Estado != *filtro.Estado {
			continue
		}
		if filtro.FechaInicio != nil && e.FechaCreacion.Before(*filtro.FechaInicio) {
			continue
		}
		if filtro.FechaFin != nil && e.FechaCreacion.After(*filtro.FechaFin) {
			continue
		}
		c := *e
		list = append(list, &c)
	}
	return list, nil
}

func (r *memExpedientes) ActualizarDescripcion(_ context.Context, id, descripcion string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.expedientes[id]
	if !ok || e.Estado != entity.EstadoEnRegistro {
		return false, nil
	}
	e.Descripcion = descripcion
	e.UpdatedAt = time.Now()
	return true, nil
}

func (r *memExpedientes) ActualizarEstado(_ context.Context, id string, esperado, nuevo entity.EstadoExpediente, extra repository.CambioEstado) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.expedientes[id]
	if !ok || e.Estado != esperado {
		return false, nil
	}
	e.Estado = nuevo
	if extra.CoordinadorAsignado != nil {
		v := *extra.CoordinadorAsignado
		e.CoordinadorAsignado = &v
	}
	if extra.JustificacionRechazo != nil {
		v := *extra.JustificacionRechazo
		e.JustificacionRechazo = &v
	}
	e.UpdatedAt = time.Now()
	return true, nil
}

// ── IndicioRepository ────────────────────────────────────────────────────────

type memIndicios struct{ s *memStore }

var _ repository.IndicioRepository = (*memIndicios)(nil)

func (r *memIndicios) Crear(_ context.Context, i *entity.Indicio) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := *i
	r.s.indicios[i.ID] = &c
	return nil
}

func (r *memIndicios) ObtenerPorID(_ context.Context, id string) (*entity.Indicio, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i, ok := r.s.indicios[id]
	if !ok {
		return nil, nil
	}
	c := *i
	return &c, nil
}

func (r *memIndicios) ListarPorExpediente(_ context.Context, expedienteID string) ([]*entity.Indicio, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.Indicio
	for _, i := range r.s.indicios {
		if i.ExpedienteID == expedienteID {
			c := *i
			list = append(list, &c)
		}
	}
	return list, nil
}

func (r *memIndicios) ContarPorExpediente(_ context.Context, expedienteID string) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := 0
	for _, i := range r.s.indicios {
		if i.ExpedienteID == expedienteID {
			n++
		}
	}
	return n, nil
}

func (r *memIndicios) Actualizar(_ context.Context, i *entity.Indicio) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.indicios[i.ID]; !ok {
		return fmt.Errorf("%w: indicio", domain.ErrNoEncontrado)
	}
	c := *i
	r.s.indicios[i.ID] = &c
	return nil
}

func (r *memIndicios) Eliminar(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.indicios, id)
	return nil
}

// ── UsuarioRepository ────────────────────────────────────────────────────────

type memUsuarios struct{ s *memStore }

var _ repository.UsuarioRepository = (*memUsuarios)(nil)

func (r *memUsuarios) Crear(_ context.Context, u *entity.Usuario) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existente := range r.s.usuarios {
		if existente.Email == u.Email {
			return fmt.Errorf("%w: el email ya esta registrado", domain.ErrDuplicado)
		}
	}
	c := *u
	r.s.usuarios[u.ID] = &c
	return nil
}

func (r *memUsuarios) ObtenerPorID(_ context.Context, id string) (*entity.Usuario, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.usuarios[id]
	if !ok {
		return nil, nil
	}
	c := *u
	return &c, nil
}

func (r *memUsuarios) ObtenerPorEmail(_ context.Context, email string) (*entity.Usuario, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.usuarios {
		if u.Email == email {
			c := *u
			return &c, nil
		}
	}
	return nil, nil
}

func (r *memUsuarios) Listar(_ context.Context) ([]*entity.Usuario, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.Usuario
	for _, u := range r.s.usuarios {
		c := *u
		list = append(list, &c)
	}
	return list, nil
}

func (r *memUsuarios) ListarPorRol(_ context.Context, rol entity.Rol) ([]*entity.Usuario, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.Usuario
	for _, u := range r.s.usuarios {
		if u.Rol == rol {
			c := *u
			list = append(list, &c)
		}
	}
	return list, nil
}

// ── ReporteRepository ────────────────────────────────────────────────────────

type memReportes struct{ s *memStore }

var _ repository.ReporteRepository = (*memReportes)(nil)

func (r *memReportes) BuscarReporte(_ context.Context, desde, hasta time.Time, estado *entity.EstadoExpediente) ([]repository.FilaReporte, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var filas []repository.FilaReporte
	for _, e := range r.s.expedientes {
		if e.FechaCreacion.Before(desde) || e.FechaCreacion.After(hasta) {
			continue
		}
		if estado != nil && e.Estado != *estado {
			continue
		}
		fila := repository.FilaReporte{
			ExpedienteID:         e.ID,
			NumeroExpediente:     e.NumeroExpediente,
			Descripcion:          e.Descripcion,
			FechaCreacion:        e.FechaCreacion,
			Estado:               e.Estado,
			JustificacionRechazo: e.JustificacionRechazo,
			TotalIndicios:        r.contarIndicios(e.ID),
		}
		if t, ok := r.s.usuarios[e.TecnicoRegistro]; ok {
			fila.TecnicoNombre = t.Nombre
		}
		if e.CoordinadorAsignado != nil {
			if c, ok := r.s.usuarios[*e.CoordinadorAsignado]; ok {
				nombre := c.Nombre
				fila.CoordinadorNombre = &nombre
			}
		}
		filas = append(filas, fila)
	}
	return filas, nil
}

func (r *memReportes) ContarPorEstado(_ context.Context) (repository.ConteoEstados, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var c repository.ConteoEstados
	for _, e := range r.s.expedientes {
		c.Total++
		switch e.Estado {
		case entity.EstadoEnRegistro:
			c.EnRegistro++
		case entity.EstadoEnRevision:
			c.EnRevision++
		case entity.EstadoAprobado:
			c.Aprobados++
		case entity.EstadoRechazado:
			c.Rechazados++
		}
	}
	return c, nil
}

func (r *memReportes) PendientesRevision(_ context.Context, coordinadorID string) ([]repository.FilaPendiente, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var filas []repository.FilaPendiente
	for _, e := range r.s.expedientes {
		if e.Estado != entity.EstadoEnRevision || e.CoordinadorAsignado == nil || *e.CoordinadorAsignado != coordinadorID {
			continue
		}
		fila := repository.FilaPendiente{
			ExpedienteID:       e.ID,
			NumeroExpediente:   e.NumeroExpediente,
			Descripcion:        e.Descripcion,
			FechaCreacion:      e.FechaCreacion,
			FechaEnvioRevision: e.UpdatedAt,
			TotalIndicios:      r.contarIndicios(e.ID),
		}
		if t, ok := r.s.usuarios[e.TecnicoRegistro]; ok {
			fila.TecnicoNombre = t.Nombre
		}
		filas = append(filas, fila)
	}
	return filas, nil
}

// contarIndicios requiere el lock tomado por el llamador.
func (r *memReportes) contarIndicios(expedienteID string) int {
	n := 0
	for _, i := range r.s.indicios {
		if i.ExpedienteID == expedienteID {
			n++
		}
	}
	return n
}
